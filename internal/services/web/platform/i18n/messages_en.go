package i18n

import "golang.org/x/text/language"

func init() {
	lang := language.English

	// Shell
	setString(lang, "app.name", "MindPath")
	setString(lang, "meta.description", "MindPath is an emotion analysis journal that supports rehabilitation and positive growth.")
	setString(lang, "nav.features", "Features")
	setString(lang, "nav.how_to_use", "How to Use")
	setString(lang, "nav.about", "About")
	setString(lang, "nav.sign_in", "Sign In")
	setString(lang, "nav.sign_up", "Sign Up")
	setString(lang, "nav.dashboard", "Go to Dashboard")
	setString(lang, "nav.sign_out", "Sign Out")

	// Landing page
	setString(lang, "title.landing", "MindPath | Listen to Your Heart")
	setString(lang, "landing.hero.title", "Listen to Your Heart")
	setString(lang, "landing.hero.subtitle", "Rehabilitation Support App Using Emotion Analysis Technology")
	setString(lang, "landing.hero.subtitle_more", "Visualize changes in your emotions and support positive growth")
	setString(lang, "landing.cta.get_started", "Get Started Now")
	setString(lang, "landing.cta.how_it_works", "See How It Works")
	setString(lang, "landing.features.heading", "Key Features")
	setString(lang, "landing.features.emotion.title", "Emotion Analysis")
	setString(lang, "landing.features.emotion.body", "Record daily emotional changes and AI analyzes patterns for visualization")
	setString(lang, "landing.features.growth.title", "Growth Tracking")
	setString(lang, "landing.features.growth.body", "View emotional changes in graphs and feel your own growth")
	setString(lang, "landing.features.privacy.title", "Privacy Protection")
	setString(lang, "landing.features.privacy.body", "All data is encrypted and privacy is strictly protected")
	setString(lang, "landing.how.heading", "How to Use")
	setString(lang, "landing.how.step1.title", "Create Account")
	setString(lang, "landing.how.step1.body", "First, create an account. Personal information is kept to a minimum and managed securely.")
	setString(lang, "landing.how.step2.title", "Daily Recording")
	setString(lang, "landing.how.step2.body", "Easily record daily emotions and events. Input casually through text or multiple choice options.")
	setString(lang, "landing.how.step3.title", "View Analysis Results")
	setString(lang, "landing.how.step3.body", "AI analyzes emotional patterns, and you can check your growth trajectory through graphs and reports.")
	setString(lang, "landing.how.step4.title", "Continuous Improvement")
	setString(lang, "landing.how.step4.body", "Based on analysis results, receive advice to aim for better mental states.")
	setString(lang, "landing.about.heading", "About MindPath")
	setString(lang, "landing.about.body", "MindPath is an emotion analysis app designed for rehabilitation support. Using the latest AI technology, it analyzes users' emotional changes and supports positive growth. Privacy is our top priority, providing a safe and reliable environment.")
	setString(lang, "landing.footer", "© 2024 MindPath. All rights reserved.")

	// Shared auth form copy
	setString(lang, "auth.email", "Email Address")
	setString(lang, "auth.email_placeholder", "Enter your email")
	setString(lang, "auth.username", "Username")
	setString(lang, "auth.username_placeholder", "Enter your username")
	setString(lang, "auth.password", "Password")
	setString(lang, "auth.password_placeholder", "Enter your password")
	setString(lang, "auth.signed_out", "You have been signed out.")

	// Sign in
	setString(lang, "title.signin", "Sign In | MindPath")
	setString(lang, "signin.heading", "Welcome Back")
	setString(lang, "signin.subheading", "Enter your credentials to access your account")
	setString(lang, "signin.submit", "Sign In")
	setString(lang, "signin.pending", "Signing In...")
	setString(lang, "signin.no_account", "Don't have an account?")
	setString(lang, "signin.sign_up_link", "Sign up")
	setString(lang, "signin.success", "Login successful! Redirecting...")

	// Sign up
	setString(lang, "title.signup", "Sign Up | MindPath")
	setString(lang, "signup.heading", "Create Account")
	setString(lang, "signup.subheading", "Enter your details to create your new account")
	setString(lang, "signup.submit", "Create Account")
	setString(lang, "signup.pending", "Creating Account...")
	setString(lang, "signup.have_account", "Already have an account?")
	setString(lang, "signup.sign_in_link", "Sign in")
	setString(lang, "signup.success", "Signup successful! Redirecting to sign in...")

	// Errors
	setString(lang, "error.unexpected", "An unexpected error occurred. Please try again.")
	setString(lang, "error.signin.required", "Please enter your email and password.")
	setString(lang, "error.signup.required", "Please enter your email, username and password.")
	setString(lang, "error.session_expired", "Your session has expired. Please sign in again.")
	setString(lang, "error.page.title.not_found", "Page not found")
	setString(lang, "error.page.title.server", "Something went wrong")
	setString(lang, "error.page.not_found", "The page you are looking for does not exist.")
	setString(lang, "error.page.server", "We could not complete your request. Please try again.")
	setString(lang, "error.page.home", "Back to home")

	// Dashboard
	setString(lang, "title.dashboard", "Dashboard | MindPath")
	setString(lang, "dashboard.heading", "MindPath Dashboard")
	setString(lang, "dashboard.welcome", "Welcome back")
	setString(lang, "dashboard.journal.title", "Daily Journal Entry")
	setString(lang, "dashboard.journal.description", "Share your thoughts and feelings. Our AI will analyze your emotions and provide personalized guidance.")
	setString(lang, "dashboard.journal.placeholder", "How are you feeling today? What's on your mind? Share your thoughts, experiences, or any challenges you're facing...")
	setString(lang, "dashboard.journal.characters", "%d characters")
	setString(lang, "dashboard.save", "Save Journal")
	setString(lang, "dashboard.saving", "Saving...")
	setString(lang, "dashboard.analyze_week", "Analyze Weekly Emotions")
	setString(lang, "dashboard.analyzing", "Analyzing...")
	setString(lang, "dashboard.chart.title", "Weekly Emotion Tracking")
	setString(lang, "dashboard.chart.description", "Your emotional journey over the past week")
	setString(lang, "dashboard.chart.empty", "No weekly analysis yet. Analyze your recent entries to see the chart.")
	setString(lang, "dashboard.chart.label", "Emotion score by day")
	setString(lang, "dashboard.chart.average", "Average Score:")
	setString(lang, "dashboard.chart.average_value", "%s/100")
	setString(lang, "dashboard.emotion.title", "Current Emotion")
	setString(lang, "dashboard.emotion.caption", "Detected from your latest journal entry")
	setString(lang, "dashboard.advice.title", "Personalized Guidance")
	setString(lang, "dashboard.recent.title", "Recent Entries")
	setString(lang, "dashboard.recent.empty", "No entries yet. Start by writing your first journal entry!")
	setString(lang, "dashboard.progress.title", "Progress Overview")
	setString(lang, "dashboard.progress.total", "Total Entries")
	setString(lang, "dashboard.progress.week", "This Week")
	setString(lang, "dashboard.progress.week_value", "7 days")
	setString(lang, "dashboard.entries_unavailable", "Your saved entries could not be loaded right now.")
	setString(lang, "dashboard.error.save_failed", "An error occurred while saving the entry.")
	setString(lang, "dashboard.error.weekly_failed", "Error analyzing weekly emotions")
}
