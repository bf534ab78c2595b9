package service

import "alcyxob/challenge75/internal/domain"

// SheetTemplate is a built-in roadmap a sheet can be created from.
type SheetTemplate struct {
	Category      domain.SheetCategory `json:"category"`
	Name          string               `json:"name"`
	Description   string               `json:"description"`
	Topics        []domain.Topic       `json:"topics"`
	Color         string               `json:"color"`
	Icon          string               `json:"icon"`
	TotalProblems int                  `json:"totalProblems"`
}

type templateTopic struct {
	name  string
	total int
}

func newTemplate(cat domain.SheetCategory, name, description, color, icon string, topics ...templateTopic) SheetTemplate {
	t := SheetTemplate{
		Category:    cat,
		Name:        name,
		Description: description,
		Color:       color,
		Icon:        icon,
		Topics:      make([]domain.Topic, len(topics)),
	}
	for i, tt := range topics {
		t.Topics[i] = domain.Topic{Name: tt.name, TotalProblems: tt.total, Order: i + 1}
		t.TotalProblems += tt.total
	}
	return t
}

// sheetTemplates is in display order.
var sheetTemplates = []SheetTemplate{
	newTemplate(domain.CategoryDSA, "DSA Sheet", "Data Structures and Algorithms roadmap", "#39FF14", "binary",
		templateTopic{"Arrays", 20},
		templateTopic{"Strings", 15},
		templateTopic{"Linked List", 15},
		templateTopic{"Stack & Queue", 12},
		templateTopic{"Trees", 25},
		templateTopic{"Binary Search", 15},
		templateTopic{"Graphs", 25},
		templateTopic{"Dynamic Programming", 30},
		templateTopic{"Recursion & Backtracking", 15},
		templateTopic{"Heap & Priority Queue", 10},
		templateTopic{"Greedy", 12},
		templateTopic{"Bit Manipulation", 8},
	),
	newTemplate(domain.CategoryCP, "Competitive Programming", "Contest preparation roadmap", "#1F8ACB", "trophy",
		templateTopic{"Number Theory", 15},
		templateTopic{"Combinatorics", 12},
		templateTopic{"Segment Trees", 15},
		templateTopic{"Fenwick Tree", 10},
		templateTopic{"Advanced Graphs", 20},
		templateTopic{"Game Theory", 8},
		templateTopic{"Advanced DP", 20},
		templateTopic{"String Algorithms", 12},
		templateTopic{"Geometry", 10},
		templateTopic{"Interactive Problems", 8},
	),
	newTemplate(domain.CategoryOS, "Operating Systems", "OS concepts for interviews", "#FF10F0", "cpu",
		templateTopic{"Process Management", 15},
		templateTopic{"Threads & Concurrency", 15},
		templateTopic{"CPU Scheduling", 10},
		templateTopic{"Deadlocks", 8},
		templateTopic{"Memory Management", 15},
		templateTopic{"Virtual Memory", 10},
		templateTopic{"File Systems", 10},
		templateTopic{"I/O Systems", 8},
		templateTopic{"System Calls", 8},
	),
	newTemplate(domain.CategoryCN, "Computer Networks", "Networking concepts for interviews", "#00FFFF", "network",
		templateTopic{"OSI & TCP/IP Model", 10},
		templateTopic{"Application Layer", 12},
		templateTopic{"Transport Layer", 15},
		templateTopic{"Network Layer", 15},
		templateTopic{"Data Link Layer", 10},
		templateTopic{"Physical Layer", 5},
		templateTopic{"Network Security", 12},
		templateTopic{"HTTP & Web", 10},
		templateTopic{"Socket Programming", 8},
	),
	newTemplate(domain.CategoryOOPS, "Object Oriented Programming", "OOP concepts and design patterns", "#FFA116", "boxes",
		templateTopic{"Classes & Objects", 10},
		templateTopic{"Inheritance", 10},
		templateTopic{"Polymorphism", 10},
		templateTopic{"Abstraction", 8},
		templateTopic{"Encapsulation", 8},
		templateTopic{"SOLID Principles", 10},
		templateTopic{"Design Patterns", 20},
		templateTopic{"UML Diagrams", 8},
	),
	newTemplate(domain.CategoryDev, "Development", "Web/App development roadmap", "#22C55E", "code",
		templateTopic{"HTML & CSS", 15},
		templateTopic{"JavaScript", 25},
		templateTopic{"React/Frontend", 20},
		templateTopic{"Node.js/Backend", 20},
		templateTopic{"Databases", 15},
		templateTopic{"REST APIs", 12},
		templateTopic{"Authentication", 8},
		templateTopic{"Deployment", 10},
		templateTopic{"System Design Basics", 15},
	),
}

// templateFor returns the template of category, if there is one.
func templateFor(category domain.SheetCategory) (SheetTemplate, bool) {
	for _, t := range sheetTemplates {
		if t.Category == category {
			return t, true
		}
	}
	return SheetTemplate{}, false
}
