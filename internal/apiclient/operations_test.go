package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/M2-SYNDICATE/Atomichack3.0/internal/domain/auth"
	"github.com/M2-SYNDICATE/Atomichack3.0/internal/domain/review"
	"github.com/M2-SYNDICATE/Atomichack3.0/internal/mocks/credentials"
)

func TestLogin_PersistsTokenAndReturnsProfile(t *testing.T) {
	store := credentials.NewMemoryStore()
	token := validToken()
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"), "login is unauthenticated")

		var body struct {
			Login    string `json:"login"`
			Password string `json:"password"`
		}
		require.NoError(t, jsonDecode(r, &body))
		assert.Equal(t, "ivanov", body.Login)
		assert.Equal(t, "secret", body.Password)

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"access_token":%q,"token_type":"bearer","full_name":"Ivanov I.I.","role":"developer"}`, token)
	}), store)

	profile, err := client.Login(context.Background(), "ivanov", "secret")
	require.NoError(t, err)
	assert.Equal(t, auth.UserProfile{Login: "ivanov", FullName: "Ivanov I.I.", Role: auth.RoleDeveloper}, profile)

	stored, ok := store.Token()
	require.True(t, ok)
	assert.Equal(t, token, stored)
}

func TestLogin_MissingTokenIsInvalidResponse(t *testing.T) {
	store := credentials.NewMemoryStore()
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"full_name":"Ivanov I.I.","role":"developer"}`)
	}), store)

	_, err := client.Login(context.Background(), "ivanov", "secret")
	require.Error(t, err)
	_, ok := store.Token()
	assert.False(t, ok)
}

func TestUpload_MultipartShape(t *testing.T) {
	store := credentials.Seeded(validToken(), nil)
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/upload", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "draft.pdf", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"doc_id":"17","filename":"draft.pdf","upload_date":"2024-01-01","status":"processing"}`)
	}), store)

	result, err := client.Upload(context.Background(), strings.NewReader("%PDF-1.7 content"), "draft.pdf")
	require.NoError(t, err)
	assert.Equal(t, "17", result.DocID)
	assert.Equal(t, "processing", result.Status)
}

func TestSubmitFixes_QueryParams(t *testing.T) {
	store := credentials.Seeded(validToken(), nil)
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "17", r.URL.Query().Get("doc_id"))
		assert.Equal(t, "occ-1,occ-4", r.URL.Query().Get("fixed_ids"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"doc_id":"17","status":"processing"}`)
	}), store)

	_, err := client.SubmitFixes(context.Background(), "17",
		strings.NewReader("fixed content"), "draft_v2.pdf", []string{"occ-1", "occ-4"})
	require.NoError(t, err)
}

func TestSetStatus(t *testing.T) {
	store := credentials.Seeded(validToken(), nil)
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/result/17/status", r.URL.Path)
		assert.Equal(t, "approved", r.URL.Query().Get("status"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"message":"ok","new_status":"approved"}`)
	}), store)

	result, err := client.SetStatus(context.Background(), "17", review.DocumentApproved)
	require.NoError(t, err)
	assert.Equal(t, "approved", result.NewStatus)
}

func TestSetCriterionStatus_CommentOnlyWhenNonEmpty(t *testing.T) {
	tests := []struct {
		name        string
		comment     string
		wantPresent bool
	}{
		{name: "with comment", comment: "font size is wrong", wantPresent: true},
		{name: "empty comment omitted", comment: "", wantPresent: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := credentials.Seeded(validToken(), nil)
			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				query := r.URL.Query()
				assert.Equal(t, "occ-9", query.Get("occ_id"))
				assert.Equal(t, "1.1.3", query.Get("error_point"))
				assert.Equal(t, "rejected", query.Get("status"))
				_, present := query["comment"]
				assert.Equal(t, tt.wantPresent, present)
				if tt.wantPresent {
					assert.Equal(t, tt.comment, query.Get("comment"))
				}
				w.Header().Set("Content-Type", "application/json")
				fmt.Fprint(w, `{"message":"ok","new_status":"rejected"}`)
			}), store)

			_, err := client.SetCriterionStatus(context.Background(), "17", review.CriterionStatusUpdate{
				OccurrenceID: "occ-9",
				ErrorPoint:   "1.1.3",
				Status:       review.CriterionRejected,
				Comment:      tt.comment,
			})
			require.NoError(t, err)
		})
	}
}

func TestProcessAnalysis_Query(t *testing.T) {
	store := credentials.Seeded(validToken(), nil)
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/process-analysis", r.URL.Path)
		assert.Equal(t, "2024-01-01", r.URL.Query().Get("start_date"))
		assert.Equal(t, "2024-02-01", r.URL.Query().Get("end_date"))
		assert.Equal(t, "true", r.URL.Query().Get("include_sessions"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"total_documents":3,"documents":[]}`)
	}), store)

	analysis, err := client.ProcessAnalysis(context.Background(), "2024-01-01", "2024-02-01", true)
	require.NoError(t, err)
	assert.Equal(t, 3, analysis.TotalDocuments)
}

func TestAdminUsers(t *testing.T) {
	store := credentials.Seeded(validToken(), nil)
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/users", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"users":[{"id":2,"login":"petrov","full_name":"Petrov P.P.","role":"norm_controller"}],"total_count":1}`)
	}), store)

	listing, err := client.AdminUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, listing.Users, 1)
	assert.Equal(t, auth.RoleNormController, listing.Users[0].Role)
	assert.Equal(t, 1, listing.TotalCount)
}

func TestCreateUser_ValidatesBeforeSending(t *testing.T) {
	store := credentials.Seeded(validToken(), nil)
	called := false
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}), store)

	_, err := client.CreateUser(context.Background(), review.CreateUserInput{Login: "x", Password: "y", Role: "superuser"})
	require.Error(t, err)
	assert.False(t, called, "invalid input must not reach the server")
}

func TestWorktimeSettings_RoundTrip(t *testing.T) {
	store := credentials.Seeded(validToken(), nil)
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/admin/worktime-settings", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"holidays":"2024-03-08,2024-05-01","schedule":{"monday":{"start":"07:45","end":"17:00"},"saturday":null,"sunday":null}}`)
	}), store)

	settings, err := client.WorktimeSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2024-03-08,2024-05-01", settings.Holidays)
	require.NotNil(t, settings.Schedule.Monday)
	assert.Equal(t, "07:45", settings.Schedule.Monday.Start)
	assert.Nil(t, settings.Schedule.Saturday)
}

func TestSaveDownload_WritesFile(t *testing.T) {
	store := credentials.Seeded(validToken(), nil)
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/download/17", r.URL.Path)
		w.Header().Set("Content-Type", "application/pdf")
		fmt.Fprint(w, "%PDF-1.7 body")
	}), store)

	target := filepath.Join(t.TempDir(), "doc.pdf")
	written, err := client.SaveDownload(context.Background(), "17", target)
	require.NoError(t, err)
	assert.Equal(t, target, written)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.7 body", string(data))

	// No stray temp files left behind.
	entries, err := os.ReadDir(filepath.Dir(target))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestSaveDownload_FailureLeavesNothing(t *testing.T) {
	store := credentials.Seeded(validToken(), nil)
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"detail":"Document not found"}`)
	}), store)

	dir := t.TempDir()
	_, err := client.SaveDownload(context.Background(), "17", filepath.Join(dir, "doc.pdf"))
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

// jsonDecode decodes a request body into dst for test assertions.
func jsonDecode(r *http.Request, dst any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}
