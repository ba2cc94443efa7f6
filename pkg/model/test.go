package model

// Test is a diagnostic record used to check that the database is reachable.
type Test struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	TestField string `gorm:"size:100;not null" json:"test_field"`
}

func (Test) TableName() string {
	return "test"
}
