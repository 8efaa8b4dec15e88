package terminal

import "time"

// Entry is one step of the scripted session: either a command typed after a
// prompt or a line of output printed at once.
type Entry struct {
	Prompt string
	Text   string
	Output string
	Delay  time.Duration
	Cursor bool
}

func (e Entry) IsCommand() bool { return e.Prompt != "" || e.Cursor }

func Command(text string, delay time.Duration) Entry {
	return Entry{Prompt: "$ ", Text: text, Delay: delay}
}

func Output(line string) Entry {
	return Entry{Output: line}
}

// CursorLine ends a script with an empty prompt and a blinking cursor.
func CursorLine() Entry {
	return Entry{Prompt: "$ ", Cursor: true}
}

var DefaultScript = []Entry{
	Command("kubectl get pods --all-namespaces", 35*time.Millisecond),
	Output("NAMESPACE     NAME                      READY   STATUS    AGE"),
	Output("production    api-server-7d8f9b6c4      1/1     Running   24h"),
	Output("production    web-frontend-5c8d4f2      1/1     Running   24h"),
	Command(`docker ps --format "table {{.Names}}\t{{.Status}}"`, 30*time.Millisecond),
	Output("NAMES              STATUS"),
	Output("nginx-proxy        Up 3 hours"),
	Output("redis-cache        Up 3 hours"),
	Command("terraform plan -out=deploy.tfplan", 30*time.Millisecond),
	Output("Plan: 3 to add, 0 to change, 0 to destroy."),
	Command("aws s3 ls s3://prod-artifacts/", 35*time.Millisecond),
	Output("2026-02-23 09:00  deployment-v2.3.1/"),
	Command(`git push origin main && echo "Deployed!"`, 30*time.Millisecond),
	Output("Deployed! ✓"),
	CursorLine(),
}
