package cli

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

func loginAs(t *testing.T, email, role string) {
	t.Helper()

	_, err := runCLI(t, "login", "--email", email, "--password", "password", "--role", role)
	require.NoError(t, err)
}

func TestUsersCommandsAreAdminOnly(t *testing.T) {
	useTempDataFile(t)

	_, err := runCLI(t, "users", "list")
	require.ErrorContains(t, err, "not signed in")

	loginAs(t, "alex@student.futurex.com", "student")
	_, err = runCLI(t, "users", "list")
	require.ErrorContains(t, err, "not available to role STUDENT")

	loginAs(t, "admin@futurex.com", "admin")
	out, err := runCLI(t, "users", "list")
	require.NoError(t, err)
	require.Contains(t, out, "alex@student.futurex.com")
	require.Contains(t, out, "sarah@trainer.futurex.com")
	require.Contains(t, out, "admin@futurex.com")
}

func TestAddTrainerKeepsAdminSession(t *testing.T) {
	useTempDataFile(t)
	loginAs(t, "admin@futurex.com", "admin")

	out, err := runCLI(t, "users", "add-trainer",
		"--name", "Jane Doe",
		"--email", "jane@trainer.futurex.com",
		"--password", "secret1")
	require.NoError(t, err)
	require.Contains(t, out, "Trainer Jane Doe <jane@trainer.futurex.com> created")

	// Unlike register, creating a trainer never switches who is signed in.
	out, err = runCLI(t, "whoami")
	require.NoError(t, err)
	require.Contains(t, out, "admin@futurex.com")

	out, err = runCLI(t, "users", "list")
	require.NoError(t, err)
	require.Contains(t, out, "jane@trainer.futurex.com")

	loginAs(t, "jane@trainer.futurex.com", "trainer")
	out, err = runCLI(t, "whoami")
	require.NoError(t, err)
	require.Contains(t, out, "role: TRAINER")
}

func TestReviewModerationFlow(t *testing.T) {
	useTempDataFile(t)

	loginAs(t, "alex@student.futurex.com", "student")
	out, err := runCLI(t, "reviews", "submit",
		"--rating", "4",
		"--comment", "Solid course, would recommend.",
		"--course", "Data Science with Python")
	require.NoError(t, err)

	m := regexp.MustCompile(`Review (\S+) submitted`).FindStringSubmatch(out)
	require.Len(t, m, 2)
	id := m[1]

	// Pending reviews stay out of the public list.
	out, err = runCLI(t, "reviews", "list")
	require.NoError(t, err)
	require.NotContains(t, out, id)

	_, err = runCLI(t, "reviews", "approve", id)
	require.ErrorContains(t, err, "not available to role STUDENT")

	loginAs(t, "admin@futurex.com", "admin")

	out, err = runCLI(t, "reviews", "list", "--all")
	require.NoError(t, err)
	require.Contains(t, out, "PENDING")
	require.Contains(t, out, id)

	out, err = runCLI(t, "reviews", "approve", id)
	require.NoError(t, err)
	require.Contains(t, out, "Review "+id+" is now APPROVED.")

	out, err = runCLI(t, "reviews", "list")
	require.NoError(t, err)
	require.Contains(t, out, id)

	out, err = runCLI(t, "reviews", "delete", id)
	require.NoError(t, err)
	require.Contains(t, out, "Review "+id+" deleted.")

	_, err = runCLI(t, "reviews", "delete", id)
	require.ErrorContains(t, err, "review "+id)
}

func TestSubmitReviewIsStudentOnly(t *testing.T) {
	useTempDataFile(t)
	loginAs(t, "sarah@trainer.futurex.com", "trainer")

	_, err := runCLI(t, "reviews", "submit",
		"--rating", "5",
		"--comment", "Teaching my own course, five stars.",
		"--course", "Full Stack React Development")
	require.ErrorContains(t, err, "not available to role TRAINER")
}
