package models

// CollectionPoint is a physical drop-off location
type CollectionPoint struct {
	ID        int64   `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Name      string  `json:"nome" db:"nome" gorm:"column:nome;not null"`
	Address   string  `json:"endereco" db:"endereco" gorm:"column:endereco;not null"`
	Latitude  float64 `json:"latitude" db:"latitude" gorm:"column:latitude;type:real;not null"`
	Longitude float64 `json:"longitude" db:"longitude" gorm:"column:longitude;type:real;not null"`
	Hours     *string `json:"horario_func" db:"horario_func" gorm:"column:horario_func"` // e.g. "Seg-Sex, 8h-17h"
}

func (CollectionPoint) TableName() string {
	return "pontos_coleta"
}
