// Package vocabulary holds the controlled lists of domain terms used for
// keyword extraction and resume matching. Everything here is read-only after
// process start and safe to share across concurrent callers.
package vocabulary

// Terms is the full controlled vocabulary scanned during job text analysis.
// Single-word entries are matched whole-token; multi-word entries are matched
// by case-insensitive containment.
var Terms = []string{
	// Programming languages
	"JavaScript", "TypeScript", "Python", "Java", "C#", "C++", "Ruby", "Go",
	"Rust", "PHP", "Swift", "Kotlin", "Scala", "R", "Perl", "Haskell",
	"Clojure", "Groovy", "Dart", "Objective-C", "Assembly", "COBOL",
	"Fortran", "MATLAB", "Shell", "PowerShell", "Bash", "SQL", "PL/SQL",
	"T-SQL",

	// Frontend
	"React", "Angular", "Vue", "Svelte", "jQuery", "Backbone", "Ember",
	"HTML", "CSS", "SASS", "LESS", "Bootstrap", "Tailwind", "Material UI",
	"Chakra UI", "Redux", "MobX", "GraphQL", "REST", "SOAP", "WebSockets",
	"PWA", "SPA", "SSR", "Web Components", "WebAssembly", "WebGL", "Canvas",
	"SVG", "D3.js", "Three.js",

	// Backend
	"Node.js", "Express", "Django", "Flask", "Spring", "ASP.NET", "Laravel",
	"Ruby on Rails", "FastAPI", "NestJS", "Symfony", "CodeIgniter",
	"Phoenix", "Play Framework", "Gin", "Echo", "Fiber", "Rocket", "Actix",
	"Axum", "Serverless", "Microservices", "Monolith", "API Gateway",
	"Service Mesh", "gRPC", "Protocol Buffers", "WebRTC",

	// Cloud and DevOps
	"AWS", "Azure", "GCP", "Google Cloud", "Cloud", "DevOps", "CI/CD",
	"Docker", "Kubernetes", "Terraform", "Ansible", "Chef", "Puppet",
	"Jenkins", "GitHub Actions", "CircleCI", "Travis CI", "ArgoCD", "Helm",
	"Prometheus", "Grafana", "ELK Stack", "Datadog", "New Relic", "Splunk",
	"PagerDuty", "Infrastructure as Code", "GitOps", "SRE",
	"Site Reliability Engineering",

	// Databases
	"NoSQL", "MongoDB", "PostgreSQL", "MySQL", "Oracle", "SQL Server",
	"SQLite", "Redis", "Elasticsearch", "Cassandra", "DynamoDB",
	"Couchbase", "Neo4j", "MariaDB", "Firebase", "Supabase", "CockroachDB",
	"TimescaleDB", "InfluxDB", "Snowflake", "BigQuery", "Redshift",
	"Data Warehouse", "Data Lake", "ETL", "ELT", "OLTP", "OLAP",

	// AI and data science
	"Machine Learning", "AI", "Deep Learning", "NLP", "Computer Vision",
	"Data Science", "TensorFlow", "PyTorch", "Keras", "scikit-learn",
	"Pandas", "NumPy", "SciPy", "NLTK", "spaCy", "Hugging Face",
	"Transformers", "GPT", "BERT", "Neural Networks",
	"Reinforcement Learning", "Supervised Learning", "Unsupervised Learning",
	"Feature Engineering", "Data Mining", "Big Data", "Hadoop", "Spark",
	"Databricks", "Airflow", "Kubeflow", "MLOps", "Data Engineering",

	// Mobile
	"iOS", "Android", "React Native", "Flutter", "Xamarin", "Ionic",
	"Cordova", "SwiftUI", "Jetpack Compose", "Kotlin Multiplatform",
	"Mobile Development", "App Development", "Progressive Web Apps",
	"Responsive Design", "Mobile First", "Push Notifications",
	"Geolocation", "Bluetooth", "NFC",

	// Game development
	"Unity", "Unreal Engine", "Godot", "Game Development", "3D Modeling",
	"Animation", "Rigging", "Texturing", "Shaders", "Physics Engine",
	"Game AI", "Multiplayer", "Networking", "Game Design", "Level Design",
	"Sound Design",

	// Security
	"Cybersecurity", "Information Security", "Network Security",
	"Application Security", "Cloud Security", "DevSecOps",
	"Penetration Testing", "Vulnerability Assessment", "Security Auditing",
	"Encryption", "Authentication", "Authorization", "OAuth", "SAML", "JWT",
	"SSO", "MFA", "Biometrics", "Compliance", "GDPR", "HIPAA", "PCI DSS",
	"SOC 2", "ISO 27001",

	// Blockchain
	"Blockchain", "Cryptocurrency", "Smart Contracts", "Ethereum",
	"Bitcoin", "Solidity", "Web3", "DeFi", "NFT", "DAO",
	"Consensus Algorithms", "Distributed Ledger", "Tokenomics",
	"Cryptography",

	// AR/VR
	"AR", "VR", "XR", "Augmented Reality", "Virtual Reality",
	"Mixed Reality", "Spatial Computing", "3D Visualization",
	"Motion Tracking", "Haptic Feedback",

	// IoT
	"IoT", "Internet of Things", "Embedded Systems", "Sensors", "Actuators",
	"MQTT", "CoAP", "Zigbee", "Z-Wave", "Bluetooth LE", "Edge Computing",
	"Fog Computing",

	// Methodologies and practices
	"Agile", "Scrum", "Kanban", "Waterfall", "Lean", "XP", "TDD", "BDD",
	"DDD", "SOLID", "Design Patterns", "SOA", "Event-Driven Architecture",
	"Hexagonal Architecture", "Clean Architecture",
	"Serverless Architecture",

	// Project and product management
	"Project Management", "Product Management", "JIRA", "Confluence",
	"Trello", "Asana", "Monday", "ClickUp", "Notion", "Product Owner",
	"Scrum Master", "Sprint Planning", "Backlog Grooming", "User Stories",
	"Acceptance Criteria", "Roadmap", "Release Planning",
	"Feature Prioritization", "A/B Testing", "User Research",
	"Market Research", "Competitive Analysis", "Go-to-Market Strategy",

	// Design
	"UX", "UI", "User Experience", "User Interface", "Interaction Design",
	"Visual Design", "Graphic Design", "Web Design", "Mobile Design",
	"Wireframing", "Prototyping", "Mockups", "Usability Testing",
	"Information Architecture", "Accessibility", "WCAG", "ADA Compliance",
	"Design Systems", "Design Thinking", "Figma", "Sketch", "Adobe XD",
	"InVision", "Zeplin", "Photoshop", "Illustrator",

	// Soft skills and general
	"Leadership", "Management", "Strategy", "Communication",
	"Collaboration", "Problem-solving", "Critical Thinking",
	"Analytical Skills", "Innovation", "Creativity", "Customer-focused",
	"Results-driven", "Detail-oriented", "Self-motivated", "Team Player",
	"Mentoring", "Coaching", "Public Speaking", "Technical Writing",
	"Documentation", "Training", "Onboarding",
	"Cross-functional Collaboration", "Stakeholder Management",
	"Conflict Resolution", "Negotiation", "Time Management",
	"Prioritization", "Decision Making",

	// Business and domain specific
	"Developer Relations", "DevRel", "Community", "Sales", "Marketing",
	"Business Development", "Customer Success", "Support", "Operations",
	"Finance", "Healthcare", "FinTech", "EdTech", "E-commerce", "Retail",
	"Manufacturing", "Logistics", "Supply Chain", "Telecommunications",
	"Media", "Entertainment", "Gaming", "Social Media", "Advertising",
	"Real Estate", "Energy", "Sustainability", "Transportation",
	"Automotive", "Aerospace", "Defense", "Government", "Non-profit",
	"Legal", "Regulatory", "Risk Management", "Insurance", "Banking",
	"Investment", "Trading",
}

// Technical is the narrower term list used when re-deriving keywords for
// resume matching. It trades coverage for precision: matching here is plain
// substring containment, so shorter and noisier entries are left out.
var Technical = []string{
	"JavaScript", "TypeScript", "Python", "Java", "C#", "C++", "Ruby", "Go",
	"Rust", "PHP",
	"React", "Angular", "Vue", "Node.js", "Express", "Django", "Flask",
	"Spring", "ASP.NET",
	"AWS", "Azure", "GCP", "Cloud", "DevOps", "CI/CD", "Docker",
	"Kubernetes", "Terraform",
	"SQL", "NoSQL", "MongoDB", "PostgreSQL", "MySQL", "Redis",
	"Elasticsearch",
	"Machine Learning", "AI", "Deep Learning", "Data Science", "TensorFlow",
	"PyTorch",
	"Frontend", "Backend", "Full Stack", "Mobile", "iOS", "Android",
	"React Native", "Flutter",
	"Agile", "Scrum", "Kanban", "Project Management", "Product Management",
	"UX", "UI", "User Experience", "User Interface", "Design", "Figma",
	"Sketch",
	"Leadership", "Management", "Strategy", "Communication",
	"Collaboration",
	"API", "REST", "GraphQL", "Microservices", "Serverless",
	"Architecture",
	"Testing", "QA", "TDD", "BDD", "Automation", "Security", "Performance",
	"Git", "GitHub", "GitLab", "Bitbucket", "Version Control",
	"Analytics", "SEO", "Marketing", "Growth", "Sales", "Customer Success",
	"Technical Writing", "Documentation", "Training", "Mentoring",
	"Coaching",
	"Blockchain", "Cryptocurrency", "Smart Contracts", "Web3",
	"AR", "VR", "XR", "Augmented Reality", "Virtual Reality",
	"IoT", "Internet of Things", "Embedded Systems",
	"Cybersecurity", "Information Security", "Network Security",
	"Game Development", "Unity", "Unreal Engine",
	"Data Analysis", "Data Engineering", "ETL", "Big Data", "Hadoop",
	"Spark",
	"Content Management", "CMS", "WordPress", "Drupal", "Shopify",
	"E-commerce", "Payments", "Stripe", "PayPal",
	"Fintech", "Healthcare", "EdTech", "PropTech", "InsurTech", "LegalTech",
	"Sustainability", "Green Tech", "Clean Energy",
	"Telecommunications", "5G", "Networking", "Protocols",
	"Quantum Computing", "Robotics", "RPA",
}

// LeadInPhrases introduce a free-text skill list in job or resume prose.
var LeadInPhrases = []string{
	"experience with",
	"experience in",
	"knowledge of",
	"proficient in",
	"skilled in",
	"expertise in",
	"familiar with",
	"background in",
	"understanding of",
	"ability to",
	"skills in",
	"competency in",
}

// Education marks degree and certification mentions in resumes.
var Education = []string{
	"Bachelor", "Master", "PhD", "Doctorate", "BSc", "MSc", "BA", "MA",
	"MBA", "Degree", "Certificate", "Certification", "Diploma", "Graduate",
	"Undergraduate",
}

// Seniority marks experience-level language in resumes.
var Seniority = []string{
	"years of experience", "year experience", "senior", "junior", "lead",
	"manager", "director", "head", "chief", "principal", "staff",
	"associate",
}

// Stopwords are common English words excluded by the relevant-word predicate
// when mining keywords out of titles.
var Stopwords = map[string]bool{}

var stopwordList = []string{
	"the", "and", "a", "an", "in", "on", "at", "to", "for", "with", "by",
	"of", "from", "as", "is", "are", "was", "were", "be", "been", "being",
	"have", "has", "had", "do", "does", "did", "will", "would", "shall",
	"should", "may", "might", "must", "can", "could", "about", "across",
	"after", "against", "among", "around", "before", "behind", "below",
	"beneath", "beside", "between", "beyond", "during", "except", "inside",
	"outside", "through", "toward", "under", "within", "without", "you",
	"your", "they", "their", "we", "our", "i", "my", "me", "he", "she",
	"it", "its", "this", "that", "these", "those", "who", "whom", "whose",
	"which", "what", "where", "when", "why", "how", "all", "any", "both",
	"each", "few", "more", "most", "other", "some", "such", "no", "nor",
	"not", "only", "own", "same", "so", "than", "too", "very", "just",
	"but", "if", "or", "because", "while", "until", "although",
}

func init() {
	for _, w := range stopwordList {
		Stopwords[w] = true
	}
}
