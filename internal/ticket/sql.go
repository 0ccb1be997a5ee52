package ticket

const getAllTicketsSQL = `
SELECT ticket_id, customer_id, creation_date, issue_description, status
FROM support_ticket
ORDER BY ticket_id
`

const getTicketsForCustomerSQL = `
SELECT ticket_id, customer_id, creation_date, issue_description, status
FROM support_ticket
WHERE customer_id = ?
ORDER BY ticket_id
`

const createTicketSQL = `
INSERT INTO support_ticket (customer_id, creation_date, issue_description, status)
VALUES (?, ?, ?, ?)
`
