package sale

const getAllSalesSQL = `
SELECT sale_id, customer_id, sale_date, amount_cents, status
FROM sale
ORDER BY sale_id
`

const getSalesForCustomerSQL = `
SELECT sale_id, customer_id, sale_date, amount_cents, status
FROM sale
WHERE customer_id = ?
ORDER BY sale_id
`

const getSaleSQL = `
SELECT sale_id, customer_id, sale_date, amount_cents, status
FROM sale
WHERE sale_id = ?
`

const createSaleSQL = `
INSERT INTO sale (customer_id, sale_date, amount_cents, status)
VALUES (?, ?, ?, ?)
`

const totalAmountSQL = `
SELECT COALESCE(SUM(amount_cents), 0)
FROM sale
`
