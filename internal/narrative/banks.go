// Package narrative synthesizes problem/impact/case-study/action narratives
// for an analyzed job from fixed template banks, binding extracted keywords
// into template slots.
package narrative

// template is a bank entry: a stable title and a description that may carry
// {keyword1} and {keyword2} slots.
type template struct {
	title       string
	description string
}

var problemBank = []template{
	{
		title:       "Technical Expertise Gap",
		description: "They need someone with deep knowledge in {keyword1} and {keyword2} to solve complex technical challenges.",
	},
	{
		title:       "Cross-Functional Collaboration",
		description: "They need someone who can effectively work across teams to align technical implementation with business objectives.",
	},
	{
		title:       "Innovation Acceleration",
		description: "They need to accelerate innovation in {keyword1} to stay competitive in a rapidly evolving market.",
	},
	{
		title:       "Technical Debt Management",
		description: "They need to address accumulated technical debt while continuing to deliver new features and capabilities.",
	},
	{
		title:       "Scaling Challenges",
		description: "They need to scale their {keyword1} systems to handle growing demand without compromising performance.",
	},
	{
		title:       "Knowledge Transfer",
		description: "They need someone who can effectively document and share knowledge about {keyword1} across the organization.",
	},
	{
		title:       "User Experience Enhancement",
		description: "They need to improve the user experience of their products to better meet customer needs and expectations.",
	},
	{
		title:       "Process Optimization",
		description: "They need to streamline and optimize their development processes to increase efficiency and productivity.",
	},
	{
		title:       "Quality Assurance",
		description: "They need to enhance testing and quality assurance practices to ensure reliable, high-quality deliverables.",
	},
	{
		title:       "Stakeholder Communication",
		description: "They need someone who can effectively communicate technical concepts to diverse stakeholders.",
	},
	{
		title:       "Community Engagement",
		description: "They need to build and nurture a community of developers and users around their {keyword1} platform.",
	},
	{
		title:       "Technical Support Enhancement",
		description: "They need to improve their technical support capabilities to better serve customers and users.",
	},
}

var impactBank = []template{
	{
		title:       "Technical Excellence",
		description: "Elevating the quality and reliability of {keyword1} systems to industry-leading standards.",
	},
	{
		title:       "Innovation Acceleration",
		description: "Accelerating the pace of innovation in {keyword1} to create competitive advantages in the market.",
	},
	{
		title:       "User Satisfaction",
		description: "Improving user satisfaction and engagement through enhanced product experiences.",
	},
	{
		title:       "Operational Efficiency",
		description: "Increasing operational efficiency through optimized processes and automation.",
	},
	{
		title:       "Market Expansion",
		description: "Enabling expansion into new markets through scalable and adaptable {keyword1} solutions.",
	},
	{
		title:       "Developer Productivity",
		description: "Enhancing developer productivity through improved tools, documentation, and practices.",
	},
	{
		title:       "Customer Retention",
		description: "Increasing customer retention through reliable, high-quality technical solutions.",
	},
	{
		title:       "Cost Reduction",
		description: "Reducing operational costs through efficient {keyword1} implementation and optimization.",
	},
	{
		title:       "Time-to-Market Acceleration",
		description: "Decreasing time-to-market for new features and products through streamlined development processes.",
	},
	{
		title:       "Community Growth",
		description: "Growing a vibrant community of developers and users around their {keyword1} ecosystem.",
	},
	{
		title:       "Knowledge Sharing",
		description: "Fostering a culture of knowledge sharing and continuous learning across the organization.",
	},
	{
		title:       "Strategic Alignment",
		description: "Ensuring technical initiatives directly support and advance key business objectives.",
	},
}

var caseStudyBank = []template{
	{
		title:       "Technical Problem Solving",
		description: "Examples of solving complex technical challenges using {keyword1}, highlighting your approach and results.",
	},
	{
		title:       "Project Leadership",
		description: "Cases where you led technical projects from inception to completion, demonstrating your planning and execution skills.",
	},
	{
		title:       "Cross-Functional Collaboration",
		description: "Situations where you effectively collaborated with diverse teams to deliver integrated solutions.",
	},
	{
		title:       "Innovation Implementation",
		description: "Examples of implementing innovative {keyword1} solutions that created significant business value.",
	},
	{
		title:       "Performance Optimization",
		description: "Cases where you improved the performance or efficiency of {keyword1} systems or processes.",
	},
	{
		title:       "Technical Leadership",
		description: "Demonstrations of providing technical guidance and mentorship to team members.",
	},
	{
		title:       "User-Centered Design",
		description: "Examples of creating technical solutions with a strong focus on user needs and experiences.",
	},
	{
		title:       "Quality Improvement",
		description: "Cases where you enhanced the quality and reliability of technical deliverables.",
	},
	{
		title:       "Stakeholder Management",
		description: "Situations where you effectively managed diverse stakeholders with competing priorities.",
	},
	{
		title:       "Technical Communication",
		description: "Examples of clearly communicating complex {keyword1} concepts to different audiences.",
	},
	{
		title:       "Community Building",
		description: "Cases where you built or contributed to developer or user communities around technical products.",
	},
	{
		title:       "Learning Agility",
		description: "Demonstrations of quickly learning and applying new technologies like {keyword1} to solve problems.",
	},
}

var actionBank = []template{
	{
		title:       "Create a {keyword1} portfolio",
		description: "Develop a portfolio showcasing your {keyword1} projects and their business impact.",
	},
	{
		title:       "Prepare {keyword1} case study",
		description: "Document a detailed case study of how you solved a complex {keyword1} challenge.",
	},
	{
		title:       "Highlight {keyword1} expertise",
		description: "Emphasize your experience with {keyword1} in your resume and cover letter.",
	},
	{
		title:       "Develop communication strategy",
		description: "Create examples of how you've communicated technical concepts to different audiences.",
	},
	{
		title:       "Document leadership approach",
		description: "Outline your approach to leading technical teams or initiatives.",
	},
	{
		title:       "Prepare problem-solving framework",
		description: "Develop a framework showing how you approach and solve technical problems.",
	},
	{
		title:       "Create collaboration examples",
		description: "Compile examples of successful cross-functional collaboration on technical projects.",
	},
	{
		title:       "Outline innovation process",
		description: "Document your process for identifying and implementing innovative solutions.",
	},
	{
		title:       "Prepare {keyword1} demonstration",
		description: "Create a brief demonstration of your {keyword1} skills for the interview process.",
	},
	{
		title:       "Research company's {keyword1} usage",
		description: "Investigate how the company currently uses {keyword1} to prepare targeted examples.",
	},
}

var conclusionBank = []string{
	"The ideal candidate will demonstrate both strong {keyword1} expertise and exceptional {keyword2} skills, with the ability to navigate complex organizational dynamics while maintaining focus on delivering business value.",
	"Success in this role requires a combination of deep {keyword1} knowledge and the ability to effectively collaborate across teams to drive {keyword2} initiatives forward.",
	"This position calls for someone who can balance technical excellence in {keyword1} with strong communication skills to ensure alignment between technical implementation and business objectives.",
	"The organization is seeking a candidate who can not only contribute technical expertise in {keyword1} but also help shape the direction of {keyword2} initiatives through thoughtful leadership.",
	"To thrive in this role, you'll need to demonstrate both hands-on experience with {keyword1} and the strategic thinking necessary to align technical solutions with {keyword2} business goals.",
}
