package squidconf

import (
	"strings"
	"testing"
)

func TestHidePassword(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "no login",
			in:   "cache_peer upstream parent 3128 0 no-query no-digest",
			want: "cache_peer upstream parent 3128 0 no-query no-digest",
		},
		{
			name: "login at end",
			in:   "cache_peer upstream parent 3128 0 no-query no-digest login=alice:s3cr3t",
			want: "cache_peer upstream parent 3128 0 no-query no-digest login=*****",
		},
		{
			name: "login followed by other options",
			in:   "cache_peer upstream parent 3128 0 login=alice:s3cr3t no-query",
			want: "cache_peer upstream parent 3128 0 login=*****",
		},
		{
			name: "multi-line block masks each line",
			in:   "cache_peer a parent 1 0 login=u1:p1\nacl x src all\ncache_peer b parent 2 0 login=u2:p2\n",
			want: "cache_peer a parent 1 0 login=*****\nacl x src all\ncache_peer b parent 2 0 login=*****\n",
		},
		{
			name: "carriage return ends the value",
			in:   "login=u:p\r\nnext",
			want: "login=*****\r\nnext",
		},
		{
			name: "empty value",
			in:   "login=",
			want: "login=*****",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HidePassword(tt.in); got != tt.want {
				t.Errorf("HidePassword(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestHidePassword_NeverLeaksSecret(t *testing.T) {
	secrets := []string{"hunter2", "p@ss word", "a:b:c", "===", "%41%42"}
	for _, secret := range secrets {
		line := "cache_peer upstream parent 3128 0 no-query no-digest login=alice:" + secret
		if got := HidePassword(line); strings.Contains(got, secret) {
			t.Errorf("HidePassword leaked %q: %q", secret, got)
		}
	}
}
