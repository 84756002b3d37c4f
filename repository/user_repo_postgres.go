package repository

import (
	"database/sql"
	"errors"

	"lightbnb/models"

	"golang.org/x/crypto/bcrypt"
)

type PostgresUserRepo struct {
	DB *sql.DB
}

func NewPostgresUserRepo(db *sql.DB) *PostgresUserRepo {
	return &PostgresUserRepo{DB: db}
}

// CreateUser creates a user after hashing the password. The email
// lookup surfaces the duplicate error without a round trip to the
// insert; the UNIQUE constraint plus ON CONFLICT is what actually
// makes the operation atomic under concurrent signups.
func (r *PostgresUserRepo) CreateUser(user *models.User) error {
	existing, err := r.GetUserByEmail(user.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrDuplicateEmail
	}

	if user.Password == "" {
		return errors.New("password cannot be empty")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashed)

	err = r.DB.QueryRow(`
		INSERT INTO users (name, email, password)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO NOTHING
		RETURNING id
	`, user.Name, user.Email, user.Password).Scan(&user.ID)
	if err == sql.ErrNoRows {
		// Lost the race to a concurrent insert with the same email.
		return ErrDuplicateEmail
	}
	return err
}

// GetUserByEmail fetches a user by exact email match.
func (r *PostgresUserRepo) GetUserByEmail(email string) (*models.User, error) {
	user := &models.User{}
	err := r.DB.QueryRow(`
		SELECT id, name, email, password
		FROM users
		WHERE email=$1
	`, email).Scan(&user.ID, &user.Name, &user.Email, &user.Password)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return user, nil
}

// GetUserByID fetches a user by primary id.
func (r *PostgresUserRepo) GetUserByID(id int64) (*models.User, error) {
	user := &models.User{}
	err := r.DB.QueryRow(`
		SELECT id, name, email, password
		FROM users
		WHERE id=$1
	`, id).Scan(&user.ID, &user.Name, &user.Email, &user.Password)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return user, nil
}
