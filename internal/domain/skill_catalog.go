package domain

// DefaultSkillCatalog is the fixed list seeded at startup. Seeding is
// idempotent: names already present are left untouched.
func DefaultSkillCatalog() []Skill {
	return []Skill{
		{SkillName: "Carpentry", RequiresCertificate: false},
		{SkillName: "Cleaning", RequiresCertificate: false},
		{SkillName: "Cooking", RequiresCertificate: false},
		{SkillName: "Driving", RequiresCertificate: true},
		{SkillName: "Electrical Work", RequiresCertificate: true},
		{SkillName: "Gardening", RequiresCertificate: false},
		{SkillName: "Masonry", RequiresCertificate: false},
		{SkillName: "Painting", RequiresCertificate: false},
		{SkillName: "Plumbing", RequiresCertificate: true},
		{SkillName: "Security", RequiresCertificate: true},
		{SkillName: "Tailoring", RequiresCertificate: false},
		{SkillName: "Welding", RequiresCertificate: true},
	}
}
