package models

// Category is a persisted row rather than in-process state so the set
// survives restarts and shares the unit-of-work discipline of the other
// entities. ServiceProvider.Category stores the value directly; there is
// no foreign key, so deletion is guarded at the service layer instead.
type Category struct {
	ID    uint   `gorm:"primaryKey" json:"-"`
	Value string `gorm:"uniqueIndex;size:100" json:"value"`
	Label string `gorm:"size:100" json:"label"`
}
