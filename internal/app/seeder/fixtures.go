package seeder

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/ilyakaznacheev/cleanenv"

	"github.com/mknhm1/itemproject/internal/service/gadget"
)

// Fixtures is the on-disk set of demo posts.
type Fixtures struct {
	Posts []PostFixture `yaml:"posts"`
}

// PostFixture is one demo post and the user that owns it.
type PostFixture struct {
	Owner      uuid.UUID `yaml:"owner"`
	CategoryID int64     `yaml:"category_id"`
	Title      string    `yaml:"title"`
	Comment    string    `yaml:"comment"`
	Image1     string    `yaml:"image1"`
	Image2     string    `yaml:"image2"`
	MapEmbed   string    `yaml:"map_embed"`
}

func (f PostFixture) input() gadget.CreatePostInput {
	return gadget.CreatePostInput{
		CategoryID: f.CategoryID,
		Title:      f.Title,
		Comment:    f.Comment,
		Image1:     f.Image1,
		Image2:     f.Image2,
		MapEmbed:   f.MapEmbed,
	}
}

// LoadFixtures reads a YAML fixtures file.
func LoadFixtures(path string) (*Fixtures, error) {
	var f Fixtures
	if err := cleanenv.ReadConfig(path, &f); err != nil {
		return nil, fmt.Errorf("read fixtures %s: %w", path, err)
	}
	return &f, nil
}
