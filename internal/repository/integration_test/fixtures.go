//go:build integration

package integration_test

// SeedSQL - общий набор данных: две организации, группы в разных статусах,
// заказы с маршрутом, рейсы с машиной, водителем и историей статусов.
const SeedSQL = `
	INSERT INTO warehouses (organization_id, code, name) VALUES (1, 'WH-1', 'Main warehouse');
	INSERT INTO customers (organization_id, code, name) VALUES (1, 'CUS-1', 'Acme Foods');
	INSERT INTO vehicle_types (organization_id, name, driver_expense_rate) VALUES (1, 'Truck 10t', 120);
	INSERT INTO vehicles (organization_id, vehicle_number, vehicle_type_id) VALUES
		(1, '51C-12345', 1),
		(2, '29A-00001', NULL);
	INSERT INTO drivers (organization_id, first_name, last_name, phone_number) VALUES
		(1, 'An', 'Nguyen', '+84900000001');
	INSERT INTO routes (organization_id, code, name, pickup_points, delivery_points, bridge_toll, notes) VALUES
		(1, 'RT-1', 'HCM - HN', '{HCM}', '{HN}', 50000, 'night only');
	INSERT INTO driver_expenses (organization_id, key, name, type, is_system, display_order) VALUES
		(1, 'driver_cost', 'Driver cost', 'DRIVER_COST', TRUE, 1),
		(1, 'fuel_cost', 'Fuel', 'FUEL_COST', TRUE, 2),
		(1, 'road_toll', 'Road toll', 'ROAD_TOLL', FALSE, 3);
	INSERT INTO route_driver_expenses (route_id, driver_expense_id, amount) VALUES
		(1, 1, 1000000),
		(1, 2, 500000);
	INSERT INTO order_groups (organization_id, code, last_status_type, updated_at) VALUES
		(1, 'GRP-1', 'APPROVED', '2026-01-01 10:00:00+00'),
		(1, 'GRP-2', 'IN_PROGRESS', '2026-01-02 10:00:00+00'),
		(1, 'GRP-3', 'IN_STOCK', '2026-01-03 10:00:00+00'),
		(2, 'GRP-4', 'APPROVED', '2026-01-04 10:00:00+00');
	INSERT INTO orders (organization_id, order_group_id, code, weight, cbm, unit_code, customer_id, route_id) VALUES
		(1, 1, 'ORD-1', 100.5, 1.25, 'KG', 1, 1),
		(1, 1, 'ORD-2', 20, NULL, 'TON', NULL, NULL),
		(1, 2, 'ORD-3', 5, 0.5, 'KG', 1, 1);
	INSERT INTO order_trips (organization_id, order_id, code, vehicle_id, driver_id, last_status_type) VALUES
		(1, 1, 'TRP-1', 1, 1, 'NEW'),
		(1, 3, 'TRP-2', 1, 1, 'CONFIRMED');
	INSERT INTO order_trip_statuses (trip_id, driver_report_type, created_at) VALUES
		(1, 'NEW', '2026-01-01 10:00:00+00'),
		(2, 'NEW', '2026-01-02 09:00:00+00'),
		(2, 'CONFIRMED', '2026-01-02 10:00:00+00');
`
