package models

type Vendedor struct {
	IDVendedor     uint    `gorm:"column:id_vendedor;primaryKey" json:"id_vendedor"`
	NombreVendedor string  `gorm:"column:nombre_vendedor;not null" json:"nombre_vendedor"`
	Dni            string  `gorm:"column:dni;size:8;not null" json:"dni"`
	Celular        string  `gorm:"column:celular;not null" json:"celular"`
	Direccion      *string `gorm:"column:direccion" json:"direccion"`
}

func (Vendedor) TableName() string {
	return "vendedor"
}
