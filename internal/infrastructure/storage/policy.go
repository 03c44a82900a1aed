package storage

import (
	"encoding/json"
	"fmt"

	"github.com/minio/minio-go/v7/pkg/policy"
)

// AvatarPrefix はアバター画像を格納するキー接頭辞です
const AvatarPrefix = "avatars/"

// publicReadPolicy は指定した接頭辞のオブジェクトだけを匿名で読み取り可能にするポリシーを返します
func publicReadPolicy(bucket, prefix string) (string, error) {
	p := policy.BucketAccessPolicy{
		Version:    "2012-10-17",
		Statements: policy.SetPolicy(nil, policy.BucketPolicyReadOnly, bucket, prefix),
	}

	b, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("failed to marshal bucket policy: %w", err)
	}
	return string(b), nil
}
