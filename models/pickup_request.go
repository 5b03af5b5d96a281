package models

// Known status labels. The set is open: any non-empty label may be stored.
const (
	StatusPending   = "Pendente"
	StatusConfirmed = "Confirmado"
	StatusCompleted = "Concluido"
)

// PickupRequest is a scheduled e-waste collection.
// CollectionPointID is nullable in storage for rows written before points
// existed; the create endpoint always requires it.
type PickupRequest struct {
	ID                int64   `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	UserID            int64   `json:"usuario_id" db:"usuario_id" gorm:"column:usuario_id;not null"`
	CollectionPointID *int64  `json:"ponto_coleta_id" db:"ponto_coleta_id" gorm:"column:ponto_coleta_id"`
	PickupDate        string  `json:"data_retirada" db:"data_retirada" gorm:"column:data_retirada;type:date;not null"`
	WasteType         string  `json:"tipo_lixo" db:"tipo_lixo" gorm:"column:tipo_lixo;not null"` // e.g. "Monitores"
	Address           string  `json:"endereco_coleta" db:"endereco_coleta" gorm:"column:endereco_coleta;not null"`
	Landmark          *string `json:"ponto_referencia" db:"ponto_referencia" gorm:"column:ponto_referencia"`
	Status            string  `json:"status" db:"status" gorm:"column:status;not null;default:'Pendente'"`

	User            *User            `json:"-" db:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CollectionPoint *CollectionPoint `json:"-" db:"-" gorm:"foreignKey:CollectionPointID"`
}

func (PickupRequest) TableName() string {
	return "agendamentos"
}

// PickupRequestView is one row of the request listing: the request merged
// with its owner and, when present, its collection point.
type PickupRequestView struct {
	ID                  int64   `json:"id" db:"id"`
	UserID              int64   `json:"usuario_id" db:"usuario_id"`
	CollectionPointID   *int64  `json:"ponto_coleta_id" db:"ponto_coleta_id"`
	PickupDate          string  `json:"data_retirada" db:"data_retirada"`
	WasteType           string  `json:"tipo_lixo" db:"tipo_lixo"`
	Address             *string `json:"endereco_coleta" db:"endereco_coleta"`
	Landmark            *string `json:"ponto_referencia" db:"ponto_referencia"`
	Status              string  `json:"status" db:"status"`
	UserName            string  `json:"nome_usuario" db:"nome_usuario"`
	UserEmail           string  `json:"email_usuario" db:"email_usuario"`
	CollectionPointName *string `json:"nome_ponto_coleta" db:"nome_ponto_coleta"`
}
