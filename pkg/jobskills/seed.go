package jobskills

import "context"

// SeedProfiles is the fixed reference set inserted by the bootstrap. Order of
// skills within a role is meaningful and preserved as stored.
var SeedProfiles = []Profile{
	{
		JobRole: "Frontend Developer",
		RequiredSkills: []string{
			"HTML", "CSS", "JavaScript", "React", "TypeScript", "Redux", "Webpack",
			"Git", "Responsive Design", "RESTful APIs",
			"Testing (Jest/React Testing Library)", "CSS Preprocessors (SASS/LESS)",
			"npm/yarn",
		},
	},
	{
		JobRole: "Backend Developer",
		RequiredSkills: []string{
			"Node.js", "Express.js", "Python", "Django/Flask", "SQL", "PostgreSQL",
			"MongoDB", "RESTful APIs", "GraphQL", "Authentication (JWT/OAuth)",
			"Docker", "Redis", "Git", "Microservices", "API Security",
		},
	},
	{
		JobRole: "Data Analyst",
		RequiredSkills: []string{
			"Python", "SQL", "Excel", "Tableau", "Power BI", "Statistics",
			"Data Visualization", "Pandas", "NumPy", "Matplotlib", "Seaborn",
			"Data Cleaning", "ETL Processes", "Business Intelligence", "R",
		},
	},
	{
		JobRole: "AI Engineer",
		RequiredSkills: []string{
			"Python", "Machine Learning", "Deep Learning", "TensorFlow", "PyTorch",
			"scikit-learn", "NLP", "Computer Vision", "Neural Networks", "Pandas",
			"NumPy", "Model Deployment", "MLOps", "Docker",
			"Cloud Platforms (AWS/GCP/Azure)", "SQL",
		},
	},
	{
		JobRole: "Full Stack Developer",
		RequiredSkills: []string{
			"JavaScript", "TypeScript", "React", "Node.js", "Express.js", "MongoDB",
			"PostgreSQL", "HTML", "CSS", "Git", "RESTful APIs", "Docker", "CI/CD",
			"AWS/Cloud", "Testing", "Agile/Scrum",
		},
	},
	{
		JobRole: "DevOps Engineer",
		RequiredSkills: []string{
			"Linux", "Docker", "Kubernetes", "Jenkins", "CI/CD", "AWS/GCP/Azure",
			"Terraform", "Ansible", "Git", "Bash/Shell Scripting", "Python",
			"Monitoring (Prometheus/Grafana)", "Nginx", "Infrastructure as Code",
			"Networking",
		},
	},
	{
		JobRole: "Mobile Developer",
		RequiredSkills: []string{
			"React Native", "Flutter", "Dart", "JavaScript", "TypeScript",
			"iOS Development", "Android Development", "Swift", "Kotlin",
			"RESTful APIs", "Git", "Mobile UI/UX", "App Store Deployment", "Firebase",
		},
	},
	{
		JobRole: "Data Scientist",
		RequiredSkills: []string{
			"Python", "R", "Machine Learning", "Statistics", "Deep Learning", "SQL",
			"Pandas", "NumPy", "Scikit-learn", "TensorFlow", "PyTorch",
			"Data Visualization", "Jupyter", "Feature Engineering",
			"Model Evaluation", "Big Data",
		},
	},
}

// Seed inserts every profile from SeedProfiles; roles already present are
// left untouched, so re-running the bootstrap is safe.
func Seed(ctx context.Context, repo Repository) error {
	for _, p := range SeedProfiles {
		if err := repo.Seed(ctx, p); err != nil {
			return err
		}
	}
	return nil
}
