package mysql

const listCustomersSQL = `
SELECT id, name, email
FROM customers
ORDER BY name
`

const getCustomerSQL = `
SELECT id, name, email
FROM customers
WHERE id = ?
`

const customerBookingsSQL = `
SELECT c.name, h.name, b.room_id, b.checkin_date, b.checkout_date
FROM bookings b
JOIN customers c ON c.id = b.customer_id
JOIN hotels    h ON h.id = b.hotel_id
WHERE b.customer_id = ?
ORDER BY b.checkin_date, b.id
`

const updateCustomerEmailSQL = `
UPDATE customers SET email = ? WHERE id = ?
`

const deleteCustomerBookingsSQL = `
DELETE FROM bookings WHERE customer_id = ?
`

const deleteCustomerSQL = `
DELETE FROM customers WHERE id = ?
`

const insertCustomerSQL = `
INSERT INTO customers (name, email) VALUES (?, ?)
`

const insertBookingSQL = `
INSERT INTO bookings (customer_id, hotel_id, room_id, checkin_date, checkout_date)
VALUES (?, ?, ?, ?, ?)
`

const listHotelsSQL = `
SELECT id, name, rooms, postcode
FROM hotels
ORDER BY name
`

// Filter value is always bound as a parameter, never interpolated.
const searchHotelsSQL = `
SELECT id, name, rooms, postcode
FROM hotels
WHERE UPPER(name) LIKE CONCAT('%', UPPER(?), '%')
ORDER BY name
`

const getHotelSQL = `
SELECT id, name, rooms, postcode
FROM hotels
WHERE id = ?
`

const hotelExistsSQL = `
SELECT EXISTS(SELECT 1 FROM hotels WHERE name = ?)
`

const insertHotelSQL = `
INSERT INTO hotels (name, rooms, postcode) VALUES (?, ?, ?)
`
