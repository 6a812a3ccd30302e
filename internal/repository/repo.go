package repository

import "database/sql"

type Repository struct {
	Menu      MenuRepositoryInterface
	Customers CustomerRepositoryInterface
	Orders    OrderRepositoryInterface
	Intents   IntentRepositoryInterface
	Employees EmployeeRepositoryInterface
	Sessions  SessionRepositoryInterface
}

func New(db *sql.DB) *Repository {
	return &Repository{
		Menu:      NewMenuRepository(db),
		Customers: NewCustomerRepository(db),
		Orders:    NewOrderRepository(db),
		Intents:   NewIntentRepository(db),
		Employees: NewEmployeeRepository(db),
		Sessions:  NewSessionRepository(db),
	}
}
