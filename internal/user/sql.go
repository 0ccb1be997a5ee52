package user

const getUserSQL = `
SELECT user_id, username, password, is_admin
FROM user
WHERE user_id = ?
`

const getUserByUsernameSQL = `
SELECT user_id, username, password, is_admin
FROM user
WHERE username = ?
`

const createUserSQL = `
INSERT INTO user (username, password, is_admin)
VALUES (?, ?, ?)
`
