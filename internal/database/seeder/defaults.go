package seeder

import "beverage-kg/internal/synonym"

func Defaults(table *synonym.Table) []Seeder {
	return []Seeder{
		SynonymSeeder{Table: table},
	}
}
