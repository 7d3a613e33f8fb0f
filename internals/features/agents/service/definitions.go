package service

// Capabilities is the public description of an agent served by
// GET /agents/status.
type Capabilities struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Capabilities    []string `json:"capabilities"`
	Tools           []string `json:"tools,omitempty"`
	MetricsProvided []string `json:"metrics_provided,omitempty"`
	SampleQueries   []string `json:"sample_queries"`
}

type persona struct {
	Role      string
	Goal      string
	Backstory string
	// TaskTemplate takes the query and the rendered context, in that order.
	TaskTemplate   string
	ExpectedOutput string
}

var supportPersona = persona{
	Role: "Customer Support Specialist",
	Goal: "Provide excellent customer support by handling client queries, managing orders, " +
		"and facilitating service enrollments",
	Backstory: "You are an experienced customer support specialist working for a fitness and wellness business. " +
		"You have access to client databases, order management systems, and external APIs for creating new orders and enquiries. " +
		"Your primary focus is to help clients with their questions about services, orders, payments, and class schedules. " +
		"You are empathetic, efficient, and always strive to provide accurate and helpful information.",
	TaskTemplate: `Process the following customer support query: %s

Context:
%s

You should:
1. Understand what the customer is asking for
2. Use the appropriate tools to gather information from the database
3. If needed, create new records using external APIs
4. Provide a comprehensive and helpful response
5. Include relevant details like order numbers, payment status, class schedules, etc.

Always be polite, professional, and thorough in your response.`,
	ExpectedOutput: "A comprehensive response addressing the customer's query with relevant information " +
		"and next steps if applicable.",
}

var dashboardPersona = persona{
	Role: "Business Analytics Specialist",
	Goal: "Provide comprehensive business insights, analytics, and metrics to help business owners " +
		"make data-driven decisions",
	Backstory: "You are a skilled business analyst with expertise in fitness and wellness industry metrics. " +
		"You have access to comprehensive business data including revenue, client information, course performance, and attendance records. " +
		"Your role is to analyze data, identify trends, and provide actionable insights that help the business grow and improve client satisfaction. " +
		"You excel at creating clear, understandable reports and highlighting key performance indicators.",
	TaskTemplate: `Analyze the following business analytics query: %s

Context:
%s

You should:
1. Understand what business metric or insight is being requested
2. Use the studio data tool to gather relevant data
3. Calculate appropriate metrics and KPIs
4. Identify trends and patterns in the data
5. Provide actionable insights and recommendations
6. Format the response with clear numbers, percentages, and explanations

Focus on providing accurate, data-driven insights that help the business owner understand their performance.`,
	ExpectedOutput: "A comprehensive analytics report with relevant metrics, trends, and actionable business insights.",
}

var supportCapabilities = Capabilities{
	Name:        "Support Agent",
	Description: "AI-powered customer support for client queries and order management",
	Capabilities: []string{
		"Client information search and retrieval",
		"Order status tracking and management",
		"Payment information and pending dues calculation",
		"Course and class schedule information",
		"New client enquiry creation",
		"Order creation from client and service information",
		"Multi-language query processing",
		"Context-aware conversations",
	},
	Tools: []string{
		"Studio Database Access",
		"External API Integration",
		"Email Service",
		"SMS Notifications",
	},
	SampleQueries: []string{
		"What classes are available this week?",
		"Has order #12345 been paid?",
		"Create an order for Yoga Beginner for client Priya Sharma",
		"Find client by email priya@example.com",
		"Show me all pending payments for this month",
	},
}

var dashboardCapabilities = Capabilities{
	Name:        "Dashboard Agent",
	Description: "AI-powered business analytics and insights generator",
	Capabilities: []string{
		"Revenue analysis and financial metrics",
		"Client behavior and retention analytics",
		"Course performance and enrollment trends",
		"Attendance tracking and completion rates",
		"Outstanding payments and collections analysis",
		"Business growth and KPI monitoring",
		"Predictive analytics and forecasting",
		"Custom report generation",
	},
	MetricsProvided: []string{
		"Total and monthly revenue",
		"Active vs inactive client counts",
		"New client acquisition rates",
		"Course completion percentages",
		"Average attendance rates",
		"Payment collection efficiency",
		"Top performing courses and instructors",
		"Client lifetime value analysis",
	},
	SampleQueries: []string{
		"How much revenue did we generate this month?",
		"Which course has the highest enrollment?",
		"What is the attendance percentage for Pilates classes?",
		"How many inactive clients do we have?",
		"Show me the top 5 clients by revenue contribution",
		"What's our client retention rate for the past 6 months?",
	},
}
