package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/qikoffice-dev/qikoffice-api/pkg/sdk"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		return
	}

	baseURL := os.Getenv("QIK_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8000"
	}
	client := sdk.New(baseURL)

	command := strings.ToUpper(os.Args[1])
	args := os.Args[2:]

	switch command {
	case "SIGNUP":
		if len(args) < 2 {
			log.Fatal("Usage: qik SIGNUP <name> <email> [company]")
		}
		company := ""
		if len(args) > 2 {
			company = args[2]
		}
		id, apiKey, err := client.Signup(args[0], args[1], company)
		if err != nil {
			log.Fatal(err)
		}
		printJSON(map[string]string{"id": id, "api_key": apiKey})

	case "WORKSPACE":
		if len(args) < 2 {
			log.Fatal("Usage: qik WORKSPACE <name> <ownerUserID> [description]")
		}
		desc := ""
		if len(args) > 2 {
			desc = args[2]
		}
		id, err := client.CreateWorkspace(args[0], args[1], desc)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(id)

	case "WORKSPACES":
		owner := ""
		if len(args) > 0 {
			owner = args[0]
		}
		list, err := client.ListWorkspaces(owner)
		if err != nil {
			log.Fatal(err)
		}
		printJSON(list)

	case "ROOM":
		if len(args) < 2 {
			log.Fatal("Usage: qik ROOM <workspaceID> <name> [type] [description]")
		}
		roomType, desc := "", ""
		if len(args) > 2 {
			roomType = args[2]
		}
		if len(args) > 3 {
			desc = args[3]
		}
		id, err := client.CreateRoom(args[0], args[1], roomType, desc)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(id)

	case "ROOMS":
		if len(args) < 1 {
			log.Fatal("Usage: qik ROOMS <workspaceID>")
		}
		list, err := client.ListRooms(args[0])
		if err != nil {
			log.Fatal(err)
		}
		printJSON(list)

	case "MEETING":
		if len(args) < 4 {
			log.Fatal("Usage: qik MEETING <roomID> <title> <scheduledAt> <hostUserID>")
		}
		id, err := client.CreateMeeting(sdk.MeetingParams{
			RoomID:      args[0],
			Title:       args[1],
			ScheduledAt: args[2],
			HostUserID:  args[3],
		})
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(id)

	case "MEETINGS":
		roomID := ""
		if len(args) > 0 {
			roomID = args[0]
		}
		list, err := client.ListMeetings(roomID)
		if err != nil {
			log.Fatal(err)
		}
		printJSON(list)

	case "NOTE":
		if len(args) < 3 {
			log.Fatal("Usage: qik NOTE <meetingID> <authorUserID> <content>")
		}
		id, err := client.CreateNote(args[0], args[1], strings.Join(args[2:], " "))
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(id)

	case "NOTES":
		if len(args) < 1 {
			log.Fatal("Usage: qik NOTES <meetingID>")
		}
		list, err := client.ListNotes(args[0])
		if err != nil {
			log.Fatal(err)
		}
		printJSON(list)

	case "TASK":
		if len(args) < 2 {
			log.Fatal("Usage: qik TASK <meetingID> <title> [assigneeUserID] [dueDate]")
		}
		assignee, due := "", ""
		if len(args) > 2 {
			assignee = args[2]
		}
		if len(args) > 3 {
			due = args[3]
		}
		id, err := client.CreateTask(args[0], args[1], assignee, due)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(id)

	case "TASKS":
		meetingID, assignee := "", ""
		if len(args) > 0 {
			meetingID = args[0]
		}
		if len(args) > 1 {
			assignee = args[1]
		}
		list, err := client.ListTasks(meetingID, assignee)
		if err != nil {
			log.Fatal(err)
		}
		printJSON(list)

	case "TASK-STATUS":
		if len(args) < 2 {
			log.Fatal("Usage: qik TASK-STATUS <taskID> <open|in_progress|done>")
		}
		if err := client.UpdateTaskStatus(args[0], args[1]); err != nil {
			log.Fatal(err)
		}
		fmt.Println("OK")

	case "SUMMARY":
		if len(args) < 1 {
			log.Fatal("Usage: qik SUMMARY <workspaceID>")
		}
		sum, err := client.DashboardSummary(args[0])
		if err != nil {
			log.Fatal(err)
		}
		printJSON(sum)

	case "PING":
		if err := client.Ping(); err != nil {
			log.Fatal(err)
		}
		fmt.Println("PONG")

	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
	}
}

func printUsage() {
	fmt.Println("Qik CLI - Interface for the Qik Office API")
	fmt.Println("\nUsage:")
	fmt.Println("  qik SIGNUP <name> <email> [company]")
	fmt.Println("  qik WORKSPACE <name> <ownerUserID> [description]")
	fmt.Println("  qik WORKSPACES [ownerUserID]")
	fmt.Println("  qik ROOM <workspaceID> <name> [type] [description]")
	fmt.Println("  qik ROOMS <workspaceID>")
	fmt.Println("  qik MEETING <roomID> <title> <scheduledAt> <hostUserID>")
	fmt.Println("  qik MEETINGS [roomID]")
	fmt.Println("  qik NOTE <meetingID> <authorUserID> <content...>")
	fmt.Println("  qik NOTES <meetingID>")
	fmt.Println("  qik TASK <meetingID> <title> [assigneeUserID] [dueDate]")
	fmt.Println("  qik TASKS [meetingID] [assigneeUserID]")
	fmt.Println("  qik TASK-STATUS <taskID> <status>")
	fmt.Println("  qik SUMMARY <workspaceID>")
	fmt.Println("  qik PING")
	fmt.Println("\nEnvironment Variables:")
	fmt.Println("  QIK_API_URL    Base URL of the daemon (default: http://localhost:8000)")
}

func printJSON(v any) {
	bytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Println(v)
		return
	}
	fmt.Println(string(bytes))
}
