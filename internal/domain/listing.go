package domain

import "time"

type HousingType string

const (
	HousingCamp      HousingType = "camp"
	HousingPrivate   HousingType = "private"
	HousingApartment HousingType = "apartment"
	HousingShelter   HousingType = "shelter"
)

type HousingStatus string

const (
	HousingAvailable   HousingStatus = "available"
	HousingOccupied    HousingStatus = "occupied"
	HousingMaintenance HousingStatus = "maintenance"
	HousingReserved    HousingStatus = "reserved"
)

type Housing struct {
	ID               int64         `db:"id" json:"id"`
	NGOID            int64         `db:"ngo_id" json:"ngo_id"`
	Name             string        `db:"name" json:"name"`
	Description      string        `db:"description" json:"description"`
	Location         string        `db:"location" json:"location"`
	Address          string        `db:"address" json:"address"`
	Capacity         int           `db:"capacity" json:"capacity"`
	CurrentOccupancy int           `db:"current_occupancy" json:"current_occupancy"`
	HousingType      HousingType   `db:"housing_type" json:"housing_type"`
	Amenities        string        `db:"amenities" json:"amenities"`
	Status           HousingStatus `db:"status" json:"status"`
	CostPerMonth     *float64      `db:"cost_per_month" json:"cost_per_month,omitempty"`
	CreatedAt        time.Time     `db:"created_at" json:"created_at"`
	LastUpdated      time.Time     `db:"last_updated" json:"last_updated"`
}

// IsAvailable reports whether the unit accepts new applications.
func (h Housing) IsAvailable() bool {
	return h.Status == HousingAvailable && h.CurrentOccupancy < h.Capacity
}

type JobType string

const (
	JobFullTime  JobType = "full_time"
	JobPartTime  JobType = "part_time"
	JobContract  JobType = "contract"
	JobTemporary JobType = "temporary"
)

type Job struct {
	ID           int64     `db:"id" json:"id"`
	NGOID        int64     `db:"ngo_id" json:"ngo_id"`
	Title        string    `db:"title" json:"title"`
	Description  string    `db:"description" json:"description"`
	Location     string    `db:"location" json:"location"`
	Employer     string    `db:"employer" json:"employer"`
	JobType      JobType   `db:"job_type" json:"job_type"`
	SalaryRange  string    `db:"salary_range" json:"salary_range"`
	Requirements string    `db:"requirements" json:"requirements"`
	Benefits     string    `db:"benefits" json:"benefits"`
	PostedAt     time.Time `db:"posted_at" json:"posted_at"`
	Deadline     time.Time `db:"deadline" json:"deadline"`
	IsActive     bool      `db:"is_active" json:"is_active"`
}

func (j Job) IsExpired(now time.Time) bool {
	return now.After(j.Deadline)
}

func (j Job) AcceptsApplications(now time.Time) bool {
	return j.IsActive && !j.IsExpired(now)
}
