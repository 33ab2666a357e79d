package model

import "time"

// Job MySQL model for the jobs table
type Job struct {
	ID        string    `gorm:"column:id;type:varchar(36);primaryKey" json:"id"`
	Name      string    `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Address   string    `gorm:"column:address;type:varchar(512)" json:"address"`
	CreatedAt time.Time `gorm:"column:created_at;type:datetime(3);not null;default:CURRENT_TIMESTAMP(3)" json:"created_at"`
}

// TableName specifies the table name for Job
func (Job) TableName() string {
	return "jobs"
}

// Worker MySQL model for the workers table
type Worker struct {
	ID        string    `gorm:"column:id;type:varchar(36);primaryKey" json:"id"`
	Name      string    `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Phone     string    `gorm:"column:phone;type:varchar(32)" json:"phone"`
	CreatedAt time.Time `gorm:"column:created_at;type:datetime(3);not null;default:CURRENT_TIMESTAMP(3)" json:"created_at"`
}

// TableName specifies the table name for Worker
func (Worker) TableName() string {
	return "workers"
}
