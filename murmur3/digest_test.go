package murmur3

import (
	"hash"
	"testing"

	"github.com/stretchr/testify/require"
)

var _ hash.Hash32 = (*digest)(nil)

func TestDigest_MatchesOneShot(t *testing.T) {
	inputs := []string{"", "w", "wire", "wireh", "wirehash", "The quick brown fox jumps over the lazy dog"}
	seeds := []uint32{0, 1, 0xdeadbeef}

	for _, input := range inputs {
		for _, seed := range seeds {
			want := Sum32WithSeed([]byte(input), seed)

			d := New32WithSeed(seed)
			_, err := d.Write([]byte(input))
			require.NoError(t, err)
			require.Equal(t, want, d.Sum32(), "single write of %q seed %d", input, seed)

			d.Reset()
			for i := 0; i < len(input); i++ {
				_, err = d.Write([]byte{input[i]})
				require.NoError(t, err)
			}
			require.Equal(t, want, d.Sum32(), "byte-wise write of %q seed %d", input, seed)

			d.Reset()
			for chunk := []byte(input); len(chunk) > 0; {
				n := 3
				if n > len(chunk) {
					n = len(chunk)
				}
				_, err = d.Write(chunk[:n])
				require.NoError(t, err)
				chunk = chunk[n:]
			}
			require.Equal(t, want, d.Sum32(), "3-byte chunked write of %q seed %d", input, seed)
		}
	}
}

func TestDigest_SumDoesNotConsume(t *testing.T) {
	d := New32()
	_, _ = d.Write([]byte("wireh"))

	first := d.Sum32()
	require.Equal(t, first, d.Sum32())

	_, _ = d.Write([]byte("ash"))
	require.Equal(t, Sum32([]byte("wirehash")), d.Sum32())
}

func TestDigest_Reset(t *testing.T) {
	d := New32WithSeed(9)
	_, _ = d.Write([]byte("garbage"))
	d.Reset()
	_, _ = d.Write([]byte("wire"))
	require.Equal(t, Sum32WithSeed([]byte("wire"), 9), d.Sum32())
}

func TestDigest_SumAppendsBigEndian(t *testing.T) {
	d := New32()
	_, _ = d.Write([]byte("wire"))

	h := d.Sum32()
	want := []byte{byte(h >> 24), byte(h >> 16), byte(h >> 8), byte(h)}
	require.Equal(t, want, d.Sum(nil))
	require.Equal(t, append([]byte("prefix"), want...), d.Sum([]byte("prefix")))
}

func TestDigest_SizeAndBlockSize(t *testing.T) {
	d := New32()
	require.Equal(t, 4, d.Size())
	require.Equal(t, 4, d.BlockSize())
}

func TestDigest_EmptySeedPassesThroughAvalanche(t *testing.T) {
	d := New32WithSeed(1)
	require.Equal(t, uint32(1364076727), d.Sum32())
}
