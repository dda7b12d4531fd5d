package roomScreens

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const PlaceholderImage = "placeholder_image"

// ImageCatalogue maps a resident's name to a bundled room image.
type ImageCatalogue struct {
	Placeholder string            `yaml:"placeholder"`
	Residents   map[string]string `yaml:"residents"`
}

func DefaultImages() *ImageCatalogue {
	return &ImageCatalogue{
		Placeholder: PlaceholderImage,
		Residents: map[string]string{
			"Eva Paucek":         "jerry_bedroom",
			"Anthony Bergstrom":  "alice_bedroom",
			"Alton Moen":         "paul_bedroom",
			"Mrs. Gerard Herman": "emma_bedroom",
		},
	}
}

// LoadImages reads a catalogue from a YAML file. An empty path gives the
// built-in catalogue. A file replaces the built-in mapping entirely.
func LoadImages(path string) (*ImageCatalogue, error) {
	if path == "" {
		return DefaultImages(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image catalogue: %w", err)
	}
	defer f.Close()

	var c ImageCatalogue
	if err := yaml.NewDecoder(f).Decode(&c); err != nil {
		return nil, fmt.Errorf("decode image catalogue %s: %w", path, err)
	}
	if c.Placeholder == "" {
		c.Placeholder = PlaceholderImage
	}
	if c.Residents == nil {
		c.Residents = map[string]string{}
	}
	return &c, nil
}

func (c *ImageCatalogue) Lookup(resident string) string {
	if img, ok := c.Residents[resident]; ok && img != "" {
		return img
	}
	return c.Placeholder
}
