package entities

type Restaurant struct {
	ID     string
	Name   string
	IsOpen bool
	City   string
}
