package catalog

import "career-compass/internal/domain/career"

// DefaultProfiles returns the built-in career catalog used when no external
// catalog source is configured.
func DefaultProfiles() []career.Profile {
	return []career.Profile{
		{
			Name:            "Data Scientist",
			Skills:          []string{"Python", "Machine Learning", "Statistics", "SQL", "Data Visualization", "Deep Learning", "NLP"},
			Description:     "Analyze complex data to extract insights and build predictive models",
			SalaryRange:     "$90,000 - $150,000",
			Growth:          career.GrowthHigh,
			ExperienceLevel: "2-5 years",
		},
		{
			Name:            "Software Engineer",
			Skills:          []string{"Python", "Java", "JavaScript", "System Design", "Databases", "Cloud Computing", "Git"},
			Description:     "Design, develop, and maintain software applications",
			SalaryRange:     "$80,000 - $140,000",
			Growth:          career.GrowthVeryHigh,
			ExperienceLevel: "0-5 years",
		},
		{
			Name:            "Product Manager",
			Skills:          []string{"Product Strategy", "Market Research", "Agile", "Communication", "Analytics", "Leadership", "UX"},
			Description:     "Lead product development from concept to launch",
			SalaryRange:     "$100,000 - $160,000",
			Growth:          career.GrowthHigh,
			ExperienceLevel: "3-7 years",
		},
		{
			Name:            "DevOps Engineer",
			Skills:          []string{"Docker", "Kubernetes", "AWS", "CI/CD", "Linux", "Scripting", "Monitoring"},
			Description:     "Bridge development and operations for efficient software delivery",
			SalaryRange:     "$95,000 - $145,000",
			Growth:          career.GrowthVeryHigh,
			ExperienceLevel: "2-5 years",
		},
		{
			Name:            "UX Designer",
			Skills:          []string{"Figma", "User Research", "Prototyping", "Design Thinking", "HTML/CSS", "Wireframing", "Usability Testing"},
			Description:     "Create intuitive and user-friendly digital experiences",
			SalaryRange:     "$70,000 - $120,000",
			Growth:          career.GrowthHigh,
			ExperienceLevel: "1-4 years",
		},
		{
			Name:            "Cloud Architect",
			Skills:          []string{"AWS", "Azure", "GCP", "Cloud Security", "Architecture", "Infrastructure", "Kubernetes"},
			Description:     "Design and manage cloud infrastructure solutions",
			SalaryRange:     "$110,000 - $170,000",
			Growth:          career.GrowthVeryHigh,
			ExperienceLevel: "5-10 years",
		},
		{
			Name:            "AI Engineer",
			Skills:          []string{"Python", "TensorFlow", "PyTorch", "MLOps", "Deep Learning", "Computer Vision", "NLP"},
			Description:     "Build and deploy AI/ML models at scale",
			SalaryRange:     "$100,000 - $160,000",
			Growth:          career.GrowthVeryHigh,
			ExperienceLevel: "2-5 years",
		},
		{
			Name:            "Business Analyst",
			Skills:          []string{"SQL", "Excel", "Data Analysis", "Requirements Gathering", "Stakeholder Management", "Power BI", "Documentation"},
			Description:     "Analyze business processes and recommend data-driven solutions",
			SalaryRange:     "$65,000 - $110,000",
			Growth:          career.GrowthMedium,
			ExperienceLevel: "1-4 years",
		},
		{
			Name:            "Cybersecurity Specialist",
			Skills:          []string{"Network Security", "Ethical Hacking", "SIEM", "Compliance", "Risk Assessment", "Penetration Testing", "Firewalls"},
			Description:     "Protect organizations from cyber threats and vulnerabilities",
			SalaryRange:     "$85,000 - $140,000",
			Growth:          career.GrowthVeryHigh,
			ExperienceLevel: "2-5 years",
		},
		{
			Name:            "Data Engineer",
			Skills:          []string{"Python", "SQL", "ETL", "Big Data", "Spark", "Hadoop", "Data Warehousing"},
			Description:     "Build and maintain data pipelines and infrastructure",
			SalaryRange:     "$90,000 - $145,000",
			Growth:          career.GrowthVeryHigh,
			ExperienceLevel: "2-5 years",
		},
	}
}

// DefaultResources returns the built-in skill priority table. Skills absent
// from the table fall back to the engine's generic bundle.
func DefaultResources() career.ResourceTable {
	return career.ResourceTable{
		"Python": {
			Level:     "Beginner-Intermediate",
			Resources: []string{"Python.org", "Real Python", "Codecademy"},
			Time:      "2-3 months",
		},
		"Machine Learning": {
			Level:     "Intermediate-Advanced",
			Resources: []string{"Coursera ML Course", "Fast.ai", "Kaggle"},
			Time:      "3-4 months",
		},
		"SQL": {
			Level:     "Beginner",
			Resources: []string{"SQLBolt", "Mode Analytics", "LeetCode"},
			Time:      "1-2 months",
		},
		"Cloud Computing": {
			Level:     "Intermediate",
			Resources: []string{"AWS Training", "Cloud Academy", "A Cloud Guru"},
			Time:      "2-3 months",
		},
		"Data Visualization": {
			Level:     "Beginner-Intermediate",
			Resources: []string{"Tableau Public", "DataCamp", "Storytelling with Data"},
			Time:      "1-2 months",
		},
	}
}
