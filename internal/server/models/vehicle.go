package models

type Vehicle struct {
	ID    int64
	Name  string
	Model string
	Year  int
}
