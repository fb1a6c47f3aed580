package config

import (
	"fmt"
	"strings"
)

// maxCatalogSize is the largest catalog the question files may define.
const maxCatalogSize = 100

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.PasswordCost < 4 || c.Auth.PasswordCost > 31 {
		return fmt.Errorf("auth.password_cost must be between 4 and 31 (got %d)", c.Auth.PasswordCost)
	}

	if err := c.Questions.validate(); err != nil {
		return fmt.Errorf("questions: %w", err)
	}

	if c.RateLimit.AuthPerMinute < 0 || c.RateLimit.AuthBurst < 0 {
		return fmt.Errorf("rate_limit: auth_per_minute and auth_burst must be >= 0")
	}

	if c.Stripe.Enabled() {
		if c.Stripe.WebhookSecret == "" || c.Stripe.PriceID == "" {
			return fmt.Errorf("stripe: webhook_secret and price_id are required when secret_key is set")
		}
	}

	if c.Storage.Enabled() {
		if c.Storage.AccessKey == "" || c.Storage.SecretKey == "" {
			return fmt.Errorf("storage: access_key and secret_key are required when bucket is set")
		}
		if c.Storage.MaxPhotoBytes <= 0 {
			return fmt.Errorf("storage: max_photo_bytes must be > 0 (got %d)", c.Storage.MaxPhotoBytes)
		}
	}

	return nil
}

func (q *QuestionsConfig) validate() error {
	if q.FreeMaxQuestions <= 0 {
		return fmt.Errorf("free_max_questions must be > 0 (got %d)", q.FreeMaxQuestions)
	}
	if q.PremiumMaxQuestions < q.FreeMaxQuestions {
		return fmt.Errorf("premium_max_questions must be >= free_max_questions (got %d < %d)",
			q.PremiumMaxQuestions, q.FreeMaxQuestions)
	}
	if q.FreeCatalogCount < 0 || q.FreeCatalogCount > maxCatalogSize {
		return fmt.Errorf("free_catalog_count must be between 0 and %d (got %d)", maxCatalogSize, q.FreeCatalogCount)
	}
	if q.CustomTextMaxLength <= 0 {
		return fmt.Errorf("custom_text_max_length must be > 0 (got %d)", q.CustomTextMaxLength)
	}
	if q.AnswerMaxLength <= 0 {
		return fmt.Errorf("answer_max_length must be > 0 (got %d)", q.AnswerMaxLength)
	}
	if strings.TrimSpace(q.DefaultLocale) == "" {
		return fmt.Errorf("default_locale is required")
	}
	return nil
}
