package customer

const getAllCustomersSQL = `
SELECT customer_id, first_name, last_name, email, phone, address, date_of_birth, date_created
FROM customer
ORDER BY customer_id
`

const searchCustomersSQL = `
SELECT customer_id, first_name, last_name, email, phone, address, date_of_birth, date_created
FROM customer
WHERE first_name LIKE '%' || ? || '%' OR last_name LIKE '%' || ? || '%'
ORDER BY customer_id
`

const getCustomerSQL = `
SELECT customer_id, first_name, last_name, email, phone, address, date_of_birth, date_created
FROM customer
WHERE customer_id = ?
`

const createCustomerSQL = `
INSERT INTO customer (
    first_name, last_name, email, phone, address, date_of_birth
) VALUES (?, ?, ?, ?, ?, ?)
`

const updateCustomerSQL = `
UPDATE customer
SET first_name = ?, last_name = ?, email = ?, phone = ?, address = ?, date_of_birth = ?
WHERE customer_id = ?
`

const deleteCustomerSQL = `
DELETE FROM customer
WHERE customer_id = ?
`

const customerExistsSQL = `
SELECT EXISTS(
    SELECT 1 FROM customer WHERE customer_id = ?
)
`
