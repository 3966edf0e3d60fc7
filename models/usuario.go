package models

// El hash de la contraseña nunca se serializa hacia el cliente.
type Usuario struct {
	IDUsuario     uint   `gorm:"column:id_usuario;primaryKey" json:"id_usuario"`
	NombreUsuario string `gorm:"column:nombre_usuario;uniqueIndex;not null" json:"nombre_usuario"`
	Correo        string `gorm:"column:correo;uniqueIndex;not null" json:"correo"`
	Password      string `gorm:"column:password;not null" json:"-"`
}

func (Usuario) TableName() string {
	return "usuarios"
}
