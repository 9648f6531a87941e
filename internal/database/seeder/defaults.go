package seeder

func Defaults() []Seeder {
	return []Seeder{
		SkillGraphSeeder{},
		CareerTransitionSeeder{},
	}
}
