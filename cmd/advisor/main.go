package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"career-advisor/internal/advisor"
	"career-advisor/internal/config"
	"career-advisor/internal/llm"
	"career-advisor/internal/logging"
	"career-advisor/pkg/models"
	"career-advisor/pkg/utils"
)

// The CLI front end runs the comprehensive advice sequence for one profile,
// then a learning path and an industry research pass, printing each section.

const sectionRule = "------------------------------------------------------------"

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to the configuration file")
	name := flag.String("name", "Alex Johnson", "student name")
	education := flag.String("education", "Bachelor's (3rd year)", "education level")
	major := flag.String("major", "Computer Science", "field of study")
	skills := flag.String("skills", "Python, JavaScript, Data Structures, Web Development", "comma-separated skills")
	interests := flag.String("interests", "AI/ML, Problem Solving, Building Products", "comma-separated interests")
	goals := flag.String("goals", "Work in AI/ML or become a software engineer at a tech company", "career goals")
	experience := flag.String("experience", "Internship at local startup, Personal coding projects, University coding club", "comma-separated experience")
	targetCareer := flag.String("career", "Machine Learning Engineer", "target career for the learning path")
	industry := flag.String("industry", "Artificial Intelligence and Machine Learning", "industry to research")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// The CLI logs warnings only; advice output goes to stdout
	cfg.Logging.Level = "warn"
	if err := logging.InitializeLogging(cfg); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	defer logging.CloseLogging()

	llmManager := llm.NewManager(cfg)
	if err := llmManager.Start(); err != nil {
		log.Fatalf("Failed to start LLM manager: %v", err)
	}
	defer llmManager.Stop()

	if !llmManager.IsHealthy() {
		fmt.Fprintln(os.Stderr, "LLM provider unavailable - check API key configuration (set LLM_API_KEY)")
		os.Exit(1)
	}

	profile := models.StudentProfile{
		Name:           *name,
		EducationLevel: *education,
		Major:          *major,
		Skills:         utils.SplitList(*skills),
		Interests:      utils.SplitList(*interests),
		CareerGoals:    *goals,
		Experience:     utils.SplitList(*experience),
	}

	adv := advisor.New(cfg, llmManager)
	ctx := context.Background()

	fmt.Println("Career Advisor")
	fmt.Println(strings.Repeat("=", 60))

	started := time.Now()

	advice, err := adv.GetComprehensiveAdvice(ctx, profile)
	if err != nil {
		log.Fatalf("Comprehensive advice failed: %v", err)
	}

	printSection("SKILLS ANALYSIS", advice.SkillsAnalysis)
	printSection("CAREER MATCHES", advice.CareerMatches)
	printSection("ACTION PLAN", advice.ActionPlan)

	learningPath, err := adv.LearningPath(ctx, profile, *targetCareer)
	if err != nil {
		log.Fatalf("Learning path failed: %v", err)
	}
	printSection("LEARNING PATH FOR "+strings.ToUpper(*targetCareer), learningPath)

	research, err := adv.ResearchIndustry(ctx, *industry)
	if err != nil {
		log.Fatalf("Industry research failed: %v", err)
	}
	printSection("INDUSTRY RESEARCH: "+*industry, research)

	fmt.Printf("\nCompleted in %s\n", utils.FormatDuration(time.Since(started)))
}

func printSection(title, body string) {
	fmt.Printf("\n%s\n%s\n%s\n", title, sectionRule, body)
}
