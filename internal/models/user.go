package models

import "time"

type UserKind string

const (
	// KindIndividual marks a volunteer account identified by CPF.
	KindIndividual UserKind = "fisico"
	// KindOrganization marks an organization account identified by CNPJ.
	KindOrganization UserKind = "juridico"
)

type User struct {
	ID           uint64   `gorm:"primarykey" json:"id"`
	Name         string   `gorm:"type:varchar(255);not null" json:"nome"`
	Email        string   `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"type:varchar(255);not null" json:"-"`
	Phone        string   `gorm:"type:varchar(30)" json:"telefone"`
	CEP          string   `gorm:"type:varchar(12)" json:"cep"`
	Street       string   `gorm:"type:varchar(255)" json:"rua"`
	City         string   `gorm:"type:varchar(120)" json:"cidade"`
	State        string   `gorm:"type:varchar(60)" json:"estado"`
	Kind         UserKind `gorm:"type:varchar(10);not null" json:"tipo"`
	CPF          *string  `gorm:"type:varchar(14)" json:"cpf"`
	CNPJ         *string  `gorm:"type:varchar(18)" json:"cnpj"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Opportunities []Opportunity `gorm:"foreignKey:CreatorID" json:"-"`
	Enrollments   []Enrollment  `gorm:"foreignKey:VolunteerID" json:"-"`
}
