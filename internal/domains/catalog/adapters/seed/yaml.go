package seed

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	types "github.com/Apurer/retail-catalog/internal/domains/catalog/application/types"
)

// Decode reads a YAML catalogue. Unknown keys are rejected; an empty
// document yields an empty seed.
func Decode(r io.Reader) (types.Seed, error) {
	var seed types.Seed
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&seed); err != nil {
		if errors.Is(err, io.EOF) {
			return types.Seed{}, nil
		}
		return types.Seed{}, fmt.Errorf("decode seed: %w", err)
	}
	return seed, nil
}

// Load decodes the YAML catalogue stored at path.
func Load(path string) (types.Seed, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return types.Seed{}, fmt.Errorf("read seed %s: %w", path, err)
	}
	return Decode(bytes.NewReader(raw))
}
