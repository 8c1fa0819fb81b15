package field

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// ErrCorruptHeightmap возвращается при разборе повреждённых данных.
var ErrCorruptHeightmap = errors.New("field: повреждённая карта высот")

// Формат: "NFH1", ширина и высота uint32 LE, затем значения float32 LE
// построчно. Всё целиком сжато zstd.
var heightmapMagic = [4]byte{'N', 'F', 'H', '1'}

const (
	headerSize   = 12
	maxDimension = 1 << 14
)

var (
	codecOnce sync.Once
	encoder   *zstd.Encoder
	decoder   *zstd.Decoder
	codecErr  error
)

func initCodec() {
	encoder, codecErr = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if codecErr != nil {
		return
	}
	decoder, codecErr = zstd.NewReader(nil)
}

// EncodeHeightmap сериализует и сжимает карту.
func EncodeHeightmap(h *Heightmap) ([]byte, error) {
	if h.Width < 0 || h.Height < 0 || len(h.Values) != h.Width*h.Height {
		return nil, fmt.Errorf("%w: %dx%d при %d значениях", ErrCorruptHeightmap, h.Width, h.Height, len(h.Values))
	}

	codecOnce.Do(initCodec)
	if codecErr != nil {
		return nil, fmt.Errorf("zstd: %w", codecErr)
	}

	raw := make([]byte, headerSize+4*len(h.Values))
	copy(raw, heightmapMagic[:])
	binary.LittleEndian.PutUint32(raw[4:], uint32(h.Width))
	binary.LittleEndian.PutUint32(raw[8:], uint32(h.Height))
	for i, v := range h.Values {
		binary.LittleEndian.PutUint32(raw[headerSize+4*i:], math.Float32bits(v))
	}

	return encoder.EncodeAll(raw, nil), nil
}

// DecodeHeightmap разбирает результат EncodeHeightmap.
func DecodeHeightmap(data []byte) (*Heightmap, error) {
	codecOnce.Do(initCodec)
	if codecErr != nil {
		return nil, fmt.Errorf("zstd: %w", codecErr)
	}

	raw, err := decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptHeightmap, err)
	}
	if len(raw) < headerSize || !bytes.Equal(raw[:4], heightmapMagic[:]) {
		return nil, fmt.Errorf("%w: неверный заголовок", ErrCorruptHeightmap)
	}

	width := binary.LittleEndian.Uint32(raw[4:])
	height := binary.LittleEndian.Uint32(raw[8:])
	if width > maxDimension || height > maxDimension {
		return nil, fmt.Errorf("%w: размер %dx%d", ErrCorruptHeightmap, width, height)
	}

	n := int(width) * int(height)
	if len(raw) != headerSize+4*n {
		return nil, fmt.Errorf("%w: ожидалось %d байт, получено %d", ErrCorruptHeightmap, headerSize+4*n, len(raw))
	}

	h := NewHeightmap(int(width), int(height))
	for i := range h.Values {
		h.Values[i] = math.Float32frombits(binary.LittleEndian.Uint32(raw[headerSize+4*i:]))
	}
	return h, nil
}
