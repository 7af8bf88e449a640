package team

import "fmt"

// Team is a real-world Premier League club.
type Team struct {
	ID        int
	Name      string
	ShortName string
	Strength  int
}

func (t Team) Validate() error {
	if t.ID <= 0 {
		return fmt.Errorf("team id must be greater than zero")
	}
	if t.Name == "" {
		return fmt.Errorf("team %d name is required", t.ID)
	}
	return nil
}
