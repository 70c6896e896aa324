package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"

	"github.com/poiesic/staffmatch"
	"github.com/poiesic/staffmatch/core"
)

// sampleEmployees is a small built-in dataset for local experimentation.
var sampleEmployees = []*core.EmployeeRecord{
	{
		Id: 1, Name: "Alice Johnson",
		Skills:          []string{"Python", "Django", "PostgreSQL", "Docker", "AWS"},
		ExperienceYears: 6,
		Projects:        []string{"Billing Platform", "Customer Portal"},
		Availability:    core.AvailabilityAvailable,
		Department:      "Engineering",
		Specialization:  "Backend Development",
		Certifications:  []string{"AWS Solutions Architect"},
	},
	{
		Id: 2, Name: "Bob Smith",
		Skills:          []string{"Java", "Spring Boot", "Kubernetes", "Kafka"},
		ExperienceYears: 9,
		Projects:        []string{"Order Service", "Event Pipeline"},
		Availability:    core.AvailabilityBusy,
		Department:      "Engineering",
		Specialization:  "Platform Engineering",
		Certifications:  []string{"CKA"},
	},
	{
		Id: 3, Name: "Carol Davis",
		Skills:          []string{"Python", "TensorFlow", "PyTorch", "MLOps"},
		ExperienceYears: 4,
		Projects:        []string{"Churn Prediction Model", "Recommendation Engine"},
		Availability:    core.AvailabilityAvailable,
		Department:      "Data Science",
		Specialization:  "Machine Learning",
		Certifications:  []string{"TensorFlow Developer"},
	},
	{
		Id: 4, Name: "David Wilson",
		Skills:          []string{"JavaScript", "React", "TypeScript", "Node.js"},
		ExperienceYears: 5,
		Projects:        []string{"Dashboard Redesign", "Design System"},
		Availability:    core.AvailabilityAvailable,
		Department:      "Engineering",
		Specialization:  "Frontend Development",
	},
	{
		Id: 5, Name: "Eva Brown",
		Skills:          []string{"Terraform", "AWS", "Ansible", "Prometheus"},
		ExperienceYears: 7,
		Projects:        []string{"Infrastructure Migration", "Monitoring Overhaul"},
		Availability:    core.AvailabilityBusy,
		Department:      "Operations",
		Specialization:  "Site Reliability",
		Certifications:  []string{"AWS DevOps Professional"},
	},
	{
		Id: 6, Name: "Frank Garcia",
		Skills:          []string{"Go", "gRPC", "PostgreSQL", "Redis"},
		ExperienceYears: 8,
		Projects:        []string{"API Gateway", "Session Service"},
		Availability:    core.AvailabilityAvailable,
		Department:      "Engineering",
		Specialization:  "Distributed Systems",
	},
	{
		Id: 7, Name: "Grace Lee",
		Skills:          []string{"SQL", "Tableau", "Python", "dbt"},
		ExperienceYears: 3,
		Projects:        []string{"Revenue Dashboard", "Data Warehouse Models"},
		Availability:    core.AvailabilityAvailable,
		Department:      "Data Science",
		Specialization:  "Analytics",
	},
	{
		Id: 8, Name: "Henry Martinez",
		Skills:          []string{"Swift", "Kotlin", "React Native"},
		ExperienceYears: 6,
		Projects:        []string{"Mobile App Rewrite", "Push Notification Service"},
		Availability:    core.AvailabilityBusy,
		Department:      "Engineering",
		Specialization:  "Mobile Development",
	},
	{
		Id: 9, Name: "Irene Chen",
		Skills:          []string{"Python", "Burp Suite", "Penetration Testing"},
		ExperienceYears: 10,
		Projects:        []string{"Security Audit", "Vulnerability Management"},
		Availability:    core.AvailabilityAvailable,
		Department:      "Security",
		Specialization:  "Application Security",
		Certifications:  []string{"OSCP", "CISSP"},
	},
	{
		Id: 10, Name: "James Taylor",
		Skills:          []string{"Figma", "User Research", "Prototyping"},
		ExperienceYears: 5,
		Projects:        []string{"Onboarding Flow", "Accessibility Review"},
		Availability:    core.AvailabilityAvailable,
		Department:      "Design",
		Specialization:  "Product Design",
	},
	{
		Id: 11, Name: "Karen White",
		Skills:          []string{"Java", "Selenium", "Cypress", "CI/CD"},
		ExperienceYears: 7,
		Projects:        []string{"Test Automation Framework", "Release Pipeline"},
		Availability:    core.AvailabilityBusy,
		Department:      "Engineering",
		Specialization:  "Quality Engineering",
	},
	{
		Id: 12, Name: "Liam Anderson",
		Skills:          []string{"Rust", "C++", "WebAssembly"},
		ExperienceYears: 4,
		Projects:        []string{"Media Transcoder", "Edge Runtime"},
		Availability:    core.AvailabilityAvailable,
		Department:      "Engineering",
		Specialization:  "Systems Programming",
	},
	{
		Id: 13, Name: "Maria Rodriguez",
		Skills:          []string{"Python", "Spark", "Airflow", "Snowflake"},
		ExperienceYears: 6,
		Projects:        []string{"Streaming Ingestion", "Batch ETL Rework"},
		Availability:    core.AvailabilityAvailable,
		Department:      "Data Science",
		Specialization:  "Data Engineering",
	},
	{
		Id: 14, Name: "Noah Thompson",
		Skills:          []string{"Go", "Docker", "Kubernetes", "Helm"},
		ExperienceYears: 2,
		Projects:        []string{"Deployment Tooling"},
		Availability:    core.AvailabilityAvailable,
		Department:      "Operations",
		Specialization:  "Platform Tooling",
	},
	{
		Id: 15, Name: "Olivia Harris",
		Skills:          []string{"Scala", "Kafka", "Flink"},
		ExperienceYears: 8,
		Projects:        []string{"Fraud Detection Stream", "Clickstream Pipeline"},
		Availability:    core.AvailabilityBusy,
		Department:      "Data Science",
		Specialization:  "Stream Processing",
	},
	{
		Id: 16, Name: "Peter Clark",
		Skills:          []string{"PHP", "Laravel", "MySQL", "Python"},
		ExperienceYears: 12,
		Projects:        []string{"Legacy Migration", "Internal CMS"},
		Availability:    core.AvailabilityAvailable,
		Department:      "Engineering",
		Specialization:  "Web Development",
	},
}

var (
	seedFileName = flag.String("src", "", "JSON file of employee records to seed")
	dbPath       = flag.String("db", "./staff_db", "path to the directory database")
)

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
	flag.Parse()
}

// recordsFromFile reads an {"employees": [...]} JSON file.
func recordsFromFile(filename string) ([]*core.EmployeeRecord, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	var file struct {
		Employees []*core.EmployeeRecord `json:"employees"`
	}
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	return file.Employees, nil
}

func main() {
	dir, err := staffmatch.NewDirectory(*dbPath)
	if err != nil {
		panic(err)
	}
	defer dir.Close()

	ctx := context.Background()

	records := sampleEmployees
	if *seedFileName != "" {
		records, err = recordsFromFile(*seedFileName)
		if err != nil {
			panic(err)
		}
	}

	count, err := dir.LoadEmployees(ctx, records)
	if err != nil {
		panic(err)
	}
	slog.Info("seeded employee directory", "loaded", count, "offered", len(records))
}
