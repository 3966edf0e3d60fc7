package models

type Proveedor struct {
	IDProveedor     uint    `gorm:"column:id_proveedor;primaryKey" json:"id_proveedor"`
	NombreProveedor string  `gorm:"column:nombre_proveedor;not null" json:"nombre_proveedor"`
	NombreContacto  string  `gorm:"column:nombre_contacto;not null" json:"nombre_contacto"`
	Celular         string  `gorm:"column:celular;not null" json:"celular"`
	Direccion       *string `gorm:"column:direccion" json:"direccion"`
}

func (Proveedor) TableName() string {
	return "proveedor"
}
