package plan

import "strings"

// Family is the coarse career grouping used to select milestone templates. It
// is distinct from the attribute catalog key: families match on title
// keywords, so "Full Stack Developer" lands in the backend family without a
// catalog entry of its own.
type Family string

const (
	FamilyFrontend Family = "frontend"
	FamilyBackend  Family = "backend"
	FamilyData     Family = "data"
	FamilyUX       Family = "ux"
	FamilySecurity Family = "security"
	FamilyGeneric  Family = "generic"
)

// FamilyOf maps a career title to its template family by case-insensitive
// keyword match.
func FamilyOf(careerTitle string) Family {
	title := strings.ToLower(careerTitle)
	switch {
	case strings.Contains(title, "frontend") || strings.Contains(title, "web"):
		return FamilyFrontend
	case strings.Contains(title, "backend") || strings.Contains(title, "full stack"):
		return FamilyBackend
	case strings.Contains(title, "data") || strings.Contains(title, "analyst"):
		return FamilyData
	case strings.Contains(title, "ux") || strings.Contains(title, "designer"):
		return FamilyUX
	case strings.Contains(title, "security") || strings.Contains(title, "cyber"):
		return FamilySecurity
	}
	return FamilyGeneric
}

type taskTemplate struct {
	title       string
	description string
}

type milestoneTemplate struct {
	title       string
	description string
	tasks       []taskTemplate
}

// milestonesFor assembles the milestone template sequence for a career title:
// a fundamentals bookend, the family-specific middle milestones, then a
// professional-development bookend. The bookend structure is fixed for every
// family.
func milestonesFor(careerTitle string) []milestoneTemplate {
	templates := make([]milestoneTemplate, 0, 5)
	templates = append(templates, fundamentalsTemplate)
	templates = append(templates, familyTemplates[FamilyOf(careerTitle)]...)
	templates = append(templates, professionalTemplate)
	return templates
}

var fundamentalsTemplate = milestoneTemplate{
	title:       "Technology Fundamentals",
	description: "Learn the core concepts and tools needed for your tech career journey.",
	tasks: []taskTemplate{
		{"Learn programming basics", "Understand variables, data types, control structures, and functions."},
		{"Set up your development environment", "Install necessary software and tools for your learning journey."},
		{"Complete an introductory course", "Take an online course that covers the fundamentals of your chosen field."},
		{"Build a simple project", "Apply your knowledge to create a basic project that demonstrates fundamental concepts."},
	},
}

var professionalTemplate = milestoneTemplate{
	title:       "Professional Development & Job Readiness",
	description: "Prepare for the job market and develop professional skills.",
	tasks: []taskTemplate{
		{"Build a portfolio", "Create a professional portfolio to showcase your projects and skills."},
		{"Prepare for technical interviews", "Practice common interview questions and coding challenges for your field."},
		{"Create a resume/CV", "Develop a professional resume highlighting your skills and projects."},
		{"Network with professionals", "Join communities, attend meetups, and connect with professionals in your field."},
	},
}

var familyTemplates = map[Family][]milestoneTemplate{
	FamilyFrontend: {
		{
			title:       "Web Development Fundamentals",
			description: "Learn the core technologies of the web: HTML, CSS, and JavaScript.",
			tasks: []taskTemplate{
				{"Learn HTML basics", "Understand HTML structure, elements, and semantic markup."},
				{"Learn CSS basics", "Understand CSS selectors, properties, and layout techniques."},
				{"Learn JavaScript basics", "Understand variables, data types, functions, and control flow."},
				{"Build a simple static website", "Apply your HTML and CSS knowledge to create a personal portfolio."},
			},
		},
		{
			title:       "CSS Frameworks & Responsive Design",
			description: "Learn how to create responsive websites that work well on all devices.",
			tasks: []taskTemplate{
				{"Learn responsive design principles", "Understand media queries, flexible grids, and responsive images."},
				{"Learn a CSS framework", "Understand how to use a CSS framework like Bootstrap or Tailwind to speed up development."},
				{"Build a responsive website", "Apply your knowledge to create a responsive website that works on mobile and desktop."},
				{"Optimize for performance", "Learn techniques to improve website loading speed and performance."},
			},
		},
		{
			title:       "JavaScript & Frontend Frameworks",
			description: "Master JavaScript and learn a modern frontend framework.",
			tasks: []taskTemplate{
				{"Advanced JavaScript concepts", "Learn about closures, promises, async/await, and ES6+ features."},
				{"Learn a frontend framework", "Understand components, state management, and routing in React, Vue, or Angular."},
				{"Build interactive applications", "Create dynamic web applications with user interactions and API integration."},
				{"Learn testing techniques", "Understand how to write unit tests and integration tests for your code."},
			},
		},
	},
	FamilyBackend: {
		{
			title:       "Backend Fundamentals",
			description: "Learn the core concepts of backend development.",
			tasks: []taskTemplate{
				{"Learn a backend language", "Master a language like Java, Python, Node.js, or C#."},
				{"Understand HTTP and APIs", "Learn about HTTP methods, status codes, and RESTful API design."},
				{"Learn basic data structures and algorithms", "Understand common data structures and algorithms used in backend development."},
				{"Build a simple API", "Create a basic API that handles CRUD operations."},
			},
		},
		{
			title:       "Databases & Data Modeling",
			description: "Master database concepts and data modeling techniques.",
			tasks: []taskTemplate{
				{"Learn SQL fundamentals", "Understand database design, SQL queries, and relationships."},
				{"Explore NoSQL databases", "Learn about document databases like MongoDB and when to use them."},
				{"Implement data models", "Design and implement data models for a backend application."},
				{"Learn about ORMs", "Understand how to use Object-Relational Mapping tools."},
			},
		},
		{
			title:       "Backend Frameworks & Architecture",
			description: "Master backend frameworks and architectural patterns.",
			tasks: []taskTemplate{
				{"Learn a backend framework", "Master a framework like Spring Boot, Django, Express, or ASP.NET Core."},
				{"Understand authentication and authorization", "Implement secure user authentication and role-based access control."},
				{"Learn about microservices", "Understand microservice architecture and its benefits."},
				{"Build a complete backend application", "Create a backend application with authentication, database integration, and API endpoints."},
			},
		},
	},
	FamilyData: {
		{
			title:       "Data Analysis Fundamentals",
			description: "Learn the core concepts and tools for data analysis.",
			tasks: []taskTemplate{
				{"Learn Python for data analysis", "Master Python basics and libraries like NumPy and Pandas."},
				{"Understand basic statistics", "Learn descriptive statistics, probability, and statistical inference."},
				{"Learn data cleaning techniques", "Understand how to clean and preprocess data for analysis."},
				{"Complete a basic data analysis project", "Analyze a dataset and draw meaningful conclusions."},
			},
		},
		{
			title:       "Data Visualization & SQL",
			description: "Master data visualization techniques and SQL for data analysis.",
			tasks: []taskTemplate{
				{"Learn data visualization techniques", "Master tools like Matplotlib, Seaborn, or Tableau."},
				{"Learn SQL for data analysis", "Understand how to query databases and extract insights."},
				{"Create interactive dashboards", "Build interactive visualizations to communicate findings."},
				{"Complete a data visualization project", "Create visualizations that tell a compelling story with data."},
			},
		},
		{
			title:       "Advanced Analytics & Machine Learning",
			description: "Learn advanced analytics techniques and machine learning fundamentals.",
			tasks: []taskTemplate{
				{"Learn machine learning fundamentals", "Understand supervised and unsupervised learning algorithms."},
				{"Master scikit-learn", "Learn how to use scikit-learn for machine learning tasks."},
				{"Understand model evaluation", "Learn techniques to evaluate and improve machine learning models."},
				{"Complete a machine learning project", "Build and deploy a machine learning model to solve a real problem."},
			},
		},
	},
	FamilyUX: {
		{
			title:       "UX Fundamentals",
			description: "Learn the core principles and methods of user experience design.",
			tasks: []taskTemplate{
				{"Learn UX principles", "Understand user-centered design, usability, and accessibility."},
				{"Master design thinking", "Learn the design thinking process and how to apply it."},
				{"Learn user research methods", "Understand interviews, surveys, and usability testing."},
				{"Complete a UX case study", "Document a design process from problem to solution."},
			},
		},
		{
			title:       "UI Design & Prototyping",
			description: "Master user interface design and prototyping techniques.",
			tasks: []taskTemplate{
				{"Learn visual design principles", "Understand typography, color theory, and layout."},
				{"Master a design tool", "Learn Figma, Sketch, or Adobe XD for UI design."},
				{"Create wireframes and prototypes", "Build low and high-fidelity prototypes for user testing."},
				{"Design a responsive interface", "Create a UI that works across different devices and screen sizes."},
			},
		},
		{
			title:       "Advanced UX & Design Systems",
			description: "Master advanced UX techniques and design systems.",
			tasks: []taskTemplate{
				{"Learn about design systems", "Understand how to create and maintain design systems."},
				{"Master interaction design", "Create meaningful animations and micro-interactions."},
				{"Understand UX writing", "Learn how to write clear and effective UI copy."},
				{"Complete an end-to-end product design", "Design a complete product from research to final UI."},
			},
		},
	},
	FamilySecurity: {
		{
			title:       "Security Fundamentals",
			description: "Learn the core concepts and principles of cybersecurity.",
			tasks: []taskTemplate{
				{"Learn networking basics", "Understand TCP/IP, DNS, and network protocols."},
				{"Understand security principles", "Learn about CIA triad, authentication, and authorization."},
				{"Learn about common vulnerabilities", "Understand OWASP Top 10 and common attack vectors."},
				{"Set up a security lab", "Create a virtual environment for security testing."},
			},
		},
		{
			title:       "Security Tools & Techniques",
			description: "Master essential security tools and techniques.",
			tasks: []taskTemplate{
				{"Learn penetration testing basics", "Understand how to identify and exploit vulnerabilities."},
				{"Master security tools", "Learn tools like Wireshark, Metasploit, and Burp Suite."},
				{"Understand cryptography", "Learn about encryption, hashing, and secure communications."},
				{"Complete a vulnerability assessment", "Identify and document vulnerabilities in a system."},
			},
		},
		{
			title:       "Advanced Security & Incident Response",
			description: "Master advanced security techniques and incident response.",
			tasks: []taskTemplate{
				{"Learn incident response", "Understand how to detect, analyze, and respond to security incidents."},
				{"Master security hardening", "Learn how to secure systems and networks against attacks."},
				{"Understand security compliance", "Learn about security standards and regulations."},
				{"Complete a security project", "Implement a comprehensive security solution for a system."},
			},
		},
	},
	FamilyGeneric: {
		{
			title:       "Core Skills Development",
			description: "Master the fundamental skills required for your tech career.",
			tasks: []taskTemplate{
				{"Learn industry-specific tools", "Master the essential tools used in your chosen field."},
				{"Understand domain fundamentals", "Learn the core concepts and principles of your domain."},
				{"Complete guided tutorials", "Follow step-by-step tutorials to build practical skills."},
				{"Build a basic project", "Apply your knowledge to create a simple project in your field."},
			},
		},
		{
			title:       "Intermediate Techniques",
			description: "Expand your skills with more advanced techniques and tools.",
			tasks: []taskTemplate{
				{"Learn advanced concepts", "Deepen your understanding with more complex topics."},
				{"Explore specialized tools", "Learn additional tools that enhance your capabilities."},
				{"Understand best practices", "Learn industry standards and best practices."},
				{"Complete an intermediate project", "Build a more complex project that demonstrates your growing skills."},
			},
		},
		{
			title:       "Advanced Skills & Specialization",
			description: "Develop expertise in specialized areas of your field.",
			tasks: []taskTemplate{
				{"Develop a specialization", "Focus on a specific area within your field."},
				{"Learn cutting-edge techniques", "Explore the latest advancements in your field."},
				{"Contribute to open source", "Participate in open source projects related to your field."},
				{"Complete an advanced project", "Build a comprehensive project that showcases your expertise."},
			},
		},
	},
}
