package models

type Producto struct {
	IDProducto     uint    `gorm:"column:id_producto;primaryKey" json:"id_producto"`
	NombreProducto string  `gorm:"column:nombre_producto;not null" json:"nombre_producto"`
	Precio         float64 `gorm:"column:precio;not null" json:"precio"`
	Stock          int     `gorm:"column:stock;not null" json:"stock"`
}

func (Producto) TableName() string {
	return "producto"
}
