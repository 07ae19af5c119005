package entity

import "time"

// User representa un usuario autenticado vía el proveedor OAuth externo.
// Se crea en el primer intercambio de sesión; no hay contraseñas locales.
type User struct {
	ID        string
	Email     string
	Name      string
	Picture   string
	CreatedAt time.Time
}
