package database

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixtureCSVs is the small but consistent demo dataset used across the
// database tests. PC-001 is billed by two employees on purpose: the industry
// analytics tests depend on it.
var fixtureCSVs = map[string]string{
	employeesFile: `Employee_ID,Name,Email,Role_ID,Job_Title,Location,Skills,LinkedIn_URL
10001,Alice Ward,alice.ward@example.com,R-01,Technical Lead - AI/ML,"Austin, Texas",Python;CV;Leadership,https://linkedin.com/in/aliceward
10002,Bob Chen,bob.chen@example.com,R-02,Senior CV Engineer,"Dallas, Texas",Python;CV;TensorFlow,https://linkedin.com/in/bobchen
10003,Carol Singh,carol.singh@example.com,R-02,Senior Engineer,"Houston, Texas",Python;AWS,https://linkedin.com/in/carolsingh
10004,Dan Ortiz,dan.ortiz@example.com,R-03,Project Manager,"Denver, Colorado",PMP;Agile,https://linkedin.com/in/danortiz
10005,Eve Park,eve.park@example.com,R-02,Data Engineer,"Austin, Texas",SQL;AWS;Python,https://linkedin.com/in/evepark
`,
	rolesFile: `Role_ID,Standard_Role,Role_Title_Variants
R-01,Technical Lead,Technical Lead - AI/ML;Tech Lead
R-02,Senior Engineer,Senior CV Engineer;Senior Engineer;Data Engineer
R-03,Project Manager,Project Manager;PM
`,
	projectsFile: `Billing_Code,Project_Name,Client,Industry,Technologies,Dollar_Amount,Project_Scope
PC-001,TX Facial Rec,Texas DPS,Law Enforcement,Python;OpenCV;AWS,500000,Statewide facial recognition enhancement
PC-002,Fraud Analytics,Federal Trade Office,Government,Python;SQL,300000,Transaction fraud detection
PC-003,Fleet Tracking,Acme Logistics,Transportation,Go;Postgres,150000,Vehicle telemetry platform
`,
	billingFile: `Billing_Code,Employee_ID,Year,Hours_Billed,Role_in_Project
PC-001,10001,2024,1200,Technical Lead
PC-001,10002,2024,900,Engineer
PC-002,10003,2024,800,Engineer
PC-002,10001,2023,400,Advisor
PC-003,10005,2023,600,Engineer
`,
	resumesFile: `Employee_ID,Education,Experience,Certifications,Summary
10001,"PhD Computer Science, UT Austin","7y Python, 3y Leadership, police tech programs",PMP,Technical lead for public safety AI
10002,"MS Computer Science, Stanford","9y CV engineering, 6y law enforcement systems",AWS Solutions Architect,Computer vision specialist
10003,"PhD AI, CMU","8y Python engineering, 2y federal law enforcement support",AWS DevOps,Backend and ML engineer
10005,"BS Data Science, UT Dallas","4y data pipelines",None,Data engineer
`,
	deliverablesFile: `Billing_Code,Deliverable,Date_Completed,Topic_Area,Technologies,Client,Codebase
PC-001,Face Match Engine,2024-06-01,Computer Vision,Python;OpenCV,Texas DPS,face-match
PC-001,Ops Dashboard,2024-08-15,Visualization,Python;Plotly,Texas DPS,ops-dash
PC-002,Fraud Model,2024-03-10,Machine Learning,Python;SQL,Federal Trade Office,fraud-ml
`,
}

func writeFixtures(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range fixtureCSVs {
		err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644)
		require.NoError(t, err)
	}
	return dir
}

func setupTestRepo(t *testing.T) *Repository {
	t.Helper()

	db, err := New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.Migrate())
	require.NoError(t, db.LoadAll(writeFixtures(t)))

	return NewRepository(db)
}

func TestLoadAll_RowCounts(t *testing.T) {
	db, err := New()
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.Migrate())
	require.NoError(t, db.LoadAll(writeFixtures(t)))

	// Row count after load equals the number of data lines in each source
	// file.
	expected := map[string]int{
		"employees":    5,
		"roles":        3,
		"projects":     3,
		"billing":      5,
		"resume_data":  4,
		"deliverables": 3,
	}
	for table, want := range expected {
		count, err := db.TableCount(table)
		require.NoError(t, err)
		assert.Equal(t, want, count, "table %s", table)
	}
}

func TestLoadAll_MissingFile(t *testing.T) {
	db, err := New()
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, db.Migrate())

	dir := writeFixtures(t)
	require.NoError(t, os.Remove(filepath.Join(dir, billingFile)))

	err = db.LoadAll(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), billingFile)
}

func TestLoadAll_HeaderMismatch(t *testing.T) {
	db, err := New()
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, db.Migrate())

	dir := writeFixtures(t)
	bad := strings.Replace(fixtureCSVs[rolesFile], "Standard_Role", "StandardRole", 1)
	require.NoError(t, os.WriteFile(filepath.Join(dir, rolesFile), []byte(bad), 0644))

	err = db.LoadAll(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "header mismatch")
}

func TestLoadAll_MalformedRow(t *testing.T) {
	db, err := New()
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, db.Migrate())

	dir := writeFixtures(t)
	bad := strings.Replace(fixtureCSVs[billingFile], "PC-001,10001,2024,1200", "PC-001,10001,twenty24,1200", 1)
	require.NoError(t, os.WriteFile(filepath.Join(dir, billingFile), []byte(bad), 0644))

	err = db.LoadAll(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid Year")
}

func TestTableCount_UnknownTable(t *testing.T) {
	db, err := New()
	require.NoError(t, err)
	defer db.Close()

	_, err = db.TableCount("users; DROP TABLE employees")
	assert.Error(t, err)
}
