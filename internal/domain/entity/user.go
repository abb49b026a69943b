package entity

// User representa un usuario que puede iniciar sesión en el panel.
// Password guarda el hash bcrypt, nunca la contraseña plana.
type User struct {
	ID       string
	Name     string
	Email    string // único, clave de login
	Password string // hash bcrypt
}
