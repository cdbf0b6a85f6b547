package models

// ConservationProject represents a fundraising conservation project
type ConservationProject struct {
	ID            int      `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	TargetAmount  int64    `json:"targetAmount"`  // Whole dollars
	CurrentAmount int64    `json:"currentAmount"` // Whole dollars
	Location      string   `json:"location"`
	Image         string   `json:"image"`
	Impacts       []string `json:"impacts"`
}

// ProgressPercentage returns how much of the target has been raised, in percent
func (p ConservationProject) ProgressPercentage() float64 {
	if p.TargetAmount <= 0 {
		return 0
	}
	return float64(p.CurrentAmount) / float64(p.TargetAmount) * 100
}

// ConservationProjectView adds the derived progress to a project
type ConservationProjectView struct {
	ConservationProject
	Progress float64 `json:"progress"`
}

// Partner represents a partner organization
type Partner struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
