package main

// @title Weather Prediction API
// @version 1.0.0
// @description AI-powered weather forecasting API for Sydney, Australia. Provides rain predictions 7 days ahead and 3-day cumulative precipitation forecasts from pre-trained models fed with Open-Meteo data.

// @contact.name API Support

// @host localhost:8001
// @BasePath /
// @schemes http
