package stubserver

import (
	_ "embed"

	"MilestoneTracker/models"

	"gopkg.in/yaml.v3"
)

//go:embed milestones.yaml
var catalogYAML []byte

type catalogEntry struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	AgeGroup    string `yaml:"ageGroup"`
	Category    string `yaml:"category"`
}

type catalogFile struct {
	Milestones []catalogEntry `yaml:"milestones"`
}

// loadCatalog reads the embedded milestone seed data.
func loadCatalog() ([]models.Milestone, error) {
	var file catalogFile
	if err := yaml.Unmarshal(catalogYAML, &file); err != nil {
		return nil, err
	}
	milestones := make([]models.Milestone, 0, len(file.Milestones))
	for _, e := range file.Milestones {
		milestones = append(milestones, models.Milestone{
			ID:          e.ID,
			Title:       e.Title,
			Description: e.Description,
			AgeGroup:    models.AgeGroup(e.AgeGroup),
			Category:    e.Category,
		})
	}
	return milestones, nil
}
