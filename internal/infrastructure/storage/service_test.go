package storage

import (
	"encoding/json"
	"testing"

	"github.com/minio/minio-go/v7/pkg/policy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hiro-mackay/gc-profile/internal/domain/valueobject"
)

func newTestStorageService(t *testing.T, cfg Config) *StorageService {
	t.Helper()
	client, err := NewMinIOClient(cfg)
	require.NoError(t, err)
	return NewStorageService(client)
}

func TestObjectURL_FromEndpoint(t *testing.T) {
	svc := newTestStorageService(t, Config{
		Endpoint:        "localhost:9000",
		AccessKeyID:     "minioadmin",
		SecretAccessKey: "minioadmin",
		BucketName:      "gc-profile",
	})

	u, err := svc.ObjectURL(valueobject.NewAvatarKey(7).Value())
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000/gc-profile/avatars/7_avatar.jpg", u)
}

func TestObjectURL_FromPublicURL(t *testing.T) {
	svc := newTestStorageService(t, Config{
		Endpoint:        "minio:9000",
		AccessKeyID:     "minioadmin",
		SecretAccessKey: "minioadmin",
		BucketName:      "media",
		UseSSL:          true,
		PublicURL:       "https://cdn.example.com/storage/",
	})

	u, err := svc.ObjectURL("avatars/1_avatar.jpg")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/storage/media/avatars/1_avatar.jpg", u)
}

func TestNewMinIOClient_DefaultsRegion(t *testing.T) {
	client, err := NewMinIOClient(Config{Endpoint: "localhost:9000", BucketName: "b"})
	require.NoError(t, err)
	assert.Equal(t, "us-east-1", client.Config().Region)
}

func TestPublicReadPolicy_LimitsToPrefix(t *testing.T) {
	raw, err := publicReadPolicy("media", AvatarPrefix)
	require.NoError(t, err)

	var p policy.BucketAccessPolicy
	require.NoError(t, json.Unmarshal([]byte(raw), &p))

	assert.Equal(t, policy.BucketPolicyReadOnly, policy.GetPolicy(p.Statements, "media", AvatarPrefix))

	var objectRead bool
	for _, st := range p.Statements {
		if st.Actions.Contains("s3:GetObject") {
			objectRead = true
			assert.True(t, st.Resources.Contains("arn:aws:s3:::media/avatars/*"))
		}
		assert.False(t, st.Actions.Contains("s3:PutObject"))
	}
	assert.True(t, objectRead)
}
