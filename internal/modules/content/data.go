package content

var projects = []Project{
	{
		ID:          "project-1",
		Title:       "Registration Modern Style",
		Description: "A registration form, dashboard and others using php and mysql. A project for our programming strand. Mordern and Premium style.",
		Tags:        []string{"PHP", "CSS", "Hack"},
		ImageSrc:    "/registrationForm.png",
		GithubURL:   "https://github.com/WilardzySenpai/Registration-Modern-Style",
		LiveURL:     "https://Registration-Modern-Style.vercel.app",
		Featured:    true,
		Details: &ProjectDetails{
			Technologies: []string{"PHP", "CSS", "Hack"},
			Role:         "Full-stack developer responsible for architecture, frontend, and backend implementation.",
		},
	},
	{
		ID:          "project-2",
		Title:       "Neon Shooting Game",
		Description: "A simple 2 player shooting game made with HTML, CSS, and JavaScript only.",
		Tags:        []string{"HTML", "CSS", "JavaScript"},
		ImageSrc:    "/neonshooting.png",
		GithubURL:   "https://github.com/WilardzySenpai/Neon-Shooting-Game",
		LiveURL:     "https://wilardzysenpai.github.io/Neon-Shooting-Game/",
		Featured:    true,
		Details: &ProjectDetails{
			Technologies: []string{"HTML", "CSS", "JavaScript"},
		},
	},
	{
		ID:          "project-3",
		Title:       "WaifuMusic",
		Description: "A music bot made with discord.js and distube for player.",
		Tags:        []string{"JavaScript", "Discord.JS"},
		ImageSrc:    "/waifumusic.png",
		GithubURL:   "https://github.com/WilardzySenpai/WaifuMusic",
		LiveURL:     "https://github.com/WilardzySenpai/WaifuMusic",
		Featured:    true,
		Details: &ProjectDetails{
			Technologies: []string{"JavaScript", "Discord.JS"},
		},
	},
	{
		ID:          "project-4",
		Title:       "Health & Fitness Tracker",
		Description: "A mobile-first web application for tracking workouts, nutrition, and health metrics with personalized insights.",
		Tags:        []string{"React Native", "GraphQL", "Node.js", "MongoDB", "D3.js"},
		ImageSrc:    "/placeholder-project-4.png",
		GithubURL:   "https://github.com/username/fitness-tracker",
		LiveURL:     "https://fitness-tracker.vercel.app",
		Details: &ProjectDetails{
			Problem:      "Existing fitness apps lacked personalization and comprehensive data visualization.",
			Solution:     "Built a platform that combines activity tracking with machine learning to provide actionable health insights.",
			Technologies: []string{"React Native", "GraphQL", "Node.js", "MongoDB", "D3.js", "TensorFlow.js"},
			Role:         "Lead developer responsible for frontend development and data visualization.",
			Outcome:      "Reached 10,000+ active users with 75% retention rate after 3 months.",
		},
	},
	{
		ID:          "project-5",
		Title:       "DevOps Automation Framework",
		Description: "An open-source framework for automating CI/CD pipelines, infrastructure provisioning, and monitoring alerts.",
		Tags:        []string{"Python", "Docker", "Kubernetes", "Terraform", "AWS"},
		ImageSrc:    "/placeholder-project-5.png",
		GithubURL:   "https://github.com/username/devops-framework",
		LiveURL:     "https://devops-framework-docs.vercel.app",
		Details: &ProjectDetails{
			Problem:      "Setting up DevOps infrastructure required specialized knowledge and repetitive configuration.",
			Solution:     "Developed a framework that simplifies deployment workflows with pre-configured templates and sensible defaults.",
			Technologies: []string{"Python", "Docker", "Kubernetes", "Terraform", "AWS", "GitHub Actions"},
			Role:         "DevOps engineer and main contributor to the open-source project.",
			Outcome:      "900+ GitHub stars and adopted by multiple startups to streamline their deployment processes.",
		},
	},
	{
		ID:          "project-6",
		Title:       "Educational Platform",
		Description: "An interactive learning platform with video courses, coding challenges, and real-time feedback.",
		Tags:        []string{"Vue.js", "Express", "PostgreSQL", "WebSockets", "Docker"},
		ImageSrc:    "/placeholder-project-6.png",
		GithubURL:   "https://github.com/username/educational-platform",
		LiveURL:     "https://educational-platform.vercel.app",
		Details: &ProjectDetails{
			Problem:      "Traditional online learning lacks engagement and interactive feedback for programming courses.",
			Solution:     "Created a platform with live code execution, instant feedback, and interactive challenges.",
			Technologies: []string{"Vue.js", "Express", "PostgreSQL", "WebSockets", "Docker", "Judge0 API"},
			Role:         "Backend developer focused on the code execution engine and feedback system.",
			Outcome:      "Used by 3 educational institutions with over 2,000 students actively learning to code.",
		},
	},
}

var skills = []Skill{
	{Name: "React", Level: 9, Category: "frontend", Description: "Building complex, responsive UIs with modern React patterns", Color: "#61DAFB"},
	{Name: "Next.js", Level: 9, Category: "frontend", Description: "Full-stack React applications with server components & API routes", Color: "#000000"},
	{Name: "TypeScript", Level: 8, Category: "frontend", Description: "Type-safe application development with advanced type features", Color: "#3178C6"},
	{Name: "Tailwind CSS", Level: 9, Category: "frontend", Description: "Rapidly building custom designs without leaving your HTML", Color: "#06B6D4"},
	{Name: "Framer Motion", Level: 7, Category: "frontend", Description: "Creating fluid animations and interactions", Color: "#0055FF"},
	{Name: "Three.js", Level: 6, Category: "frontend", Description: "3D graphics and visualizations for the web", Color: "#000000"},
	{Name: "CSS/SCSS", Level: 8, Category: "frontend", Description: "Advanced layouts, animations, and responsive design", Color: "#1572B6"},
	{Name: "HTML", Level: 9, Category: "frontend", Description: "Semantic markup and accessibility", Color: "#E34F26"},
	{Name: "Node.js", Level: 8, Category: "backend", Description: "Building scalable server-side applications and APIs", Color: "#339933"},
	{Name: "Bun", Level: 7, Category: "backend", Description: "Ultra-fast JavaScript runtime and bundler", Color: "#FBF0DF"},
	{Name: "Express", Level: 8, Category: "backend", Description: "Building RESTful APIs and web services", Color: "#000000"},
	{Name: "PostgreSQL", Level: 7, Category: "backend", Description: "Relational database design and optimization", Color: "#4169E1"},
	{Name: "MongoDB", Level: 7, Category: "backend", Description: "Document-based database modeling and queries", Color: "#47A248"},
	{Name: "GraphQL", Level: 6, Category: "backend", Description: "Efficient API development with precise data fetching", Color: "#E10098"},
	{Name: "Prisma", Level: 7, Category: "backend", Description: "Type-safe database access with ORM capabilities", Color: "#2D3748"},
	{Name: "Docker", Level: 7, Category: "devops", Description: "Containerization for consistent deployment environments", Color: "#2496ED"},
	{Name: "Git", Level: 8, Category: "devops", Description: "Version control and collaboration workflows", Color: "#F05032"},
	{Name: "CI/CD", Level: 7, Category: "devops", Description: "Automated testing and deployment pipelines", Color: "#4078c0"},
	{Name: "AWS", Level: 6, Category: "devops", Description: "Cloud infrastructure and serverless architecture", Color: "#FF9900"},
	{Name: "Vercel", Level: 8, Category: "devops", Description: "Frontend deployment and edge functions", Color: "#000000"},
	{Name: "Testing", Level: 7, Category: "other", Description: "Unit, integration, and E2E testing with Jest and Cypress", Color: "#C21325"},
	{Name: "Accessibility", Level: 7, Category: "other", Description: "Building inclusive applications with WCAG compliance", Color: "#005A9C"},
	{Name: "Performance", Level: 8, Category: "other", Description: "Web vitals optimization and bundle size reduction", Color: "#4285F4"},
	{Name: "SEO", Level: 7, Category: "other", Description: "Search engine optimization and structured data", Color: "#FBBC05"},
}

var offerings = []Offering{
	{
		ID:          "full-stack-development",
		Title:       "Full-Stack Development",
		Description: "End-to-end development of web applications with modern frontend frameworks and scalable backend architecture.",
		Icon:        "code",
		Benefits: []string{
			"Responsive and accessible user interfaces",
			"Optimized performance and core web vitals",
			"Server-side rendering and SEO optimization",
			"Secure API development and authentication",
		},
		Featured: true,
	},
	{
		ID:          "api-development",
		Title:       "API Development",
		Description: "Design and implementation of RESTful or GraphQL APIs with proper documentation and security measures.",
		Icon:        "database",
		Benefits: []string{
			"RESTful or GraphQL architecture based on project needs",
			"Comprehensive data validation and error handling",
			"Authentication and authorization mechanisms",
			"Detailed API documentation and testing",
		},
		Featured: true,
	},
	{
		ID:          "performance-optimization",
		Title:       "Performance Optimization",
		Description: "Analysis and enhancement of application performance, focusing on loading times, rendering efficiency, and database queries.",
		Icon:        "gauge",
		Benefits: []string{
			"Core Web Vitals improvement",
			"Bundle size optimization",
			"Database query optimization",
			"Image and asset optimization strategies",
		},
		Featured: true,
	},
	{
		ID:          "cloud-deployment",
		Title:       "Cloud Deployment",
		Description: "Setup and configuration of cloud infrastructure for reliable, scalable, and cost-effective application hosting.",
		Icon:        "cloud",
		Benefits: []string{
			"Infrastructure as Code (IaC) setup",
			"Automated deployment pipelines",
			"Scalable architecture design",
			"Cost optimization strategies",
		},
	},
	{
		ID:          "devops-automation",
		Title:       "DevOps Automation",
		Description: "Streamlining development workflows with CI/CD pipelines, containerization, and infrastructure automation.",
		Icon:        "server",
		Benefits: []string{
			"CI/CD pipeline configuration",
			"Docker and Kubernetes deployment",
			"Monitoring and alerting systems",
			"Infrastructure scaling solutions",
		},
	},
	{
		ID:          "security-auditing",
		Title:       "Security Auditing",
		Description: "Comprehensive analysis of application security, identifying vulnerabilities and implementing best practices for data protection.",
		Icon:        "shield",
		Benefits: []string{
			"Vulnerability assessment and penetration testing",
			"Authentication and authorization review",
			"Data encryption and protection strategies",
			"Security best practices implementation",
		},
	},
	{
		ID:          "ai-integration",
		Title:       "AI Integration",
		Description: "Incorporating artificial intelligence capabilities into web applications for enhanced functionality and user experience.",
		Icon:        "brain-circuit",
		Benefits: []string{
			"Natural language processing features",
			"Content generation and analysis",
			"Recommendation systems",
			"Personalization algorithms",
		},
	},
	{
		ID:          "custom-admin-dashboards",
		Title:       "Custom Admin Dashboards",
		Description: "Development of tailored administration interfaces for efficient content and user management.",
		Icon:        "layout-dashboard",
		Benefits: []string{
			"Intuitive content management systems",
			"Real-time data visualization",
			"User management and permissions",
			"Custom analytics and reporting",
		},
	},
}
