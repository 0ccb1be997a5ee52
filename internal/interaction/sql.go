package interaction

const getAllInteractionsSQL = `
SELECT interaction_id, customer_id, interaction_date, type, notes
FROM interaction
ORDER BY interaction_id
`

const getInteractionsForCustomerSQL = `
SELECT interaction_id, customer_id, interaction_date, type, notes
FROM interaction
WHERE customer_id = ?
ORDER BY interaction_id
`

const createInteractionSQL = `
INSERT INTO interaction (customer_id, interaction_date, type, notes)
VALUES (?, ?, ?, ?)
`
