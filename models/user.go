package models

// UserKind separates private citizens from companies that collect e-waste
type UserKind string

const (
	KindCitizen UserKind = "cidadao"
	KindCompany UserKind = "empresa"
)

// User owns pickup requests. Rows are only created by the setup seed.
type User struct {
	ID       int64    `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Name     string   `json:"nome" db:"nome" gorm:"column:nome;not null"`
	Email    string   `json:"email" db:"email" gorm:"column:email;uniqueIndex;not null"`
	Password string   `json:"-" db:"senha" gorm:"column:senha;not null"` // stored as given, see DESIGN.md
	Kind     UserKind `json:"tipo" db:"tipo" gorm:"column:tipo;not null"`
}

func (User) TableName() string {
	return "usuarios"
}
