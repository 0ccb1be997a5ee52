package user

type User struct {
	UserID   int64  `db:"user_id"`
	Username string `db:"username"`
	Password string `db:"password"` // bcrypt hash, never the plaintext
	IsAdmin  bool   `db:"is_admin"`
}
