package docs

// @title TripX Recommendation API
// @version 1.0
// @description Multi-factor travel destination recommendation service: scores a fixed catalog against budget, duration, trip type and season.

// @host localhost:8080
// @BasePath /
// @schemes http https
