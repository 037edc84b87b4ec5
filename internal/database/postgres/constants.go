package postgres

// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
const PgErrorCodeUniqueViolation = "23505"
