// Command seed fills a running chirper instance with demo data through the
// GraphQL endpoint: a handful of users, a follow graph, tweets, likes and
// retweets.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v6"
)

const defaultAPIURL = "http://localhost:8080"

var apiURL = defaultAPIURL

type gqlResponse struct {
	Data   map[string]json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

func main() {
	gofakeit.Seed(time.Now().UnixNano())

	if v := os.Getenv("SEED_API_URL"); v != "" {
		apiURL = v
	}

	numUsers := 20
	log.Printf("Seeding %d users against %s", numUsers, apiURL)

	type account struct {
		id       string
		username string
		token    string
		tweetIDs []string
	}

	accounts := make([]account, 0, numUsers)

	// 1. Register and login everyone.
	for i := 0; i < numUsers; i++ {
		username := fmt.Sprintf("%s%d", gofakeit.Username(), i)
		password := "password123"

		id := registerUser(gofakeit.Name(), username, gofakeit.Email(), password)
		if id == "" {
			continue
		}

		token := loginUser(username, password)
		if token == "" {
			log.Printf("could not login %s, skipping", username)
			continue
		}

		accounts = append(accounts, account{id: id, username: username, token: token})
	}
	log.Printf("Registered %d users", len(accounts))

	// 2. Random follow graph: everyone follows a handful of others.
	follows := 0
	for i := range accounts {
		for j := range accounts {
			if i == j || rand.Intn(4) != 0 {
				continue
			}
			if followUser(accounts[i].token, accounts[j].id) {
				follows++
			}
		}
	}
	log.Printf("Created %d follow edges", follows)

	// 3. Tweets.
	tweets := 0
	for i := range accounts {
		n := gofakeit.Number(1, 5)
		for t := 0; t < n; t++ {
			id := createTweet(accounts[i].token, gofakeit.Sentence(gofakeit.Number(3, 12)))
			if id != "" {
				accounts[i].tweetIDs = append(accounts[i].tweetIDs, id)
				tweets++
			}
		}
	}
	log.Printf("Created %d tweets", tweets)

	// 4. Likes and retweets across the graph.
	likes, retweets := 0, 0
	for i := range accounts {
		for j := range accounts {
			if i == j {
				continue
			}
			for _, tweetID := range accounts[j].tweetIDs {
				if rand.Intn(3) == 0 && likeTweet(accounts[i].token, tweetID) {
					likes++
				}
				if rand.Intn(6) == 0 && retweetTweet(accounts[i].token, tweetID) {
					retweets++
				}
			}
		}
	}
	log.Printf("Created %d likes, %d retweets", likes, retweets)

	log.Println("Seeding completed")
}

func registerUser(name, username, email, password string) string {
	data, err := gql("", `mutation($name:String!,$username:String!,$email:String!,$password:String!){
		register(name:$name,username:$username,email:$email,password:$password){ id }
	}`, map[string]interface{}{
		"name": name, "username": username, "email": email, "password": password,
	})
	if err != nil {
		log.Printf("register %s: %v", username, err)
		return ""
	}

	var out struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(data["register"], &out); err != nil {
		return ""
	}
	return out.ID
}

func loginUser(username, password string) string {
	data, err := gql("", `mutation($username:String!,$password:String!){
		login(username:$username,password:$password){ token }
	}`, map[string]interface{}{"username": username, "password": password})
	if err != nil {
		log.Printf("login %s: %v", username, err)
		return ""
	}

	var out struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(data["login"], &out); err != nil {
		return ""
	}
	return out.Token
}

func createTweet(token, content string) string {
	data, err := gql(token, `mutation($content:String!){ createTweet(content:$content){ id } }`,
		map[string]interface{}{"content": content})
	if err != nil {
		log.Printf("createTweet: %v", err)
		return ""
	}

	var out struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(data["createTweet"], &out); err != nil {
		return ""
	}
	return out.ID
}

func followUser(token, userID string) bool {
	_, err := gql(token, `mutation($userId:ID!){ follow(userId:$userId) }`,
		map[string]interface{}{"userId": userID})
	return err == nil
}

func likeTweet(token, tweetID string) bool {
	_, err := gql(token, `mutation($tweetId:ID!){ like(tweetId:$tweetId){ id } }`,
		map[string]interface{}{"tweetId": tweetID})
	return err == nil
}

func retweetTweet(token, tweetID string) bool {
	_, err := gql(token, `mutation($tweetId:ID!){ retweet(tweetId:$tweetId){ id } }`,
		map[string]interface{}{"tweetId": tweetID})
	return err == nil
}

// gql posts one GraphQL operation and returns the data map, treating any
// GraphQL-level error as a failure.
func gql(token, query string, variables map[string]interface{}) (map[string]json.RawMessage, error) {
	body, err := json.Marshal(map[string]interface{}{
		"query":     query,
		"variables": variables,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, apiURL+"/graphql", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var out gqlResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	if len(out.Errors) > 0 {
		return nil, fmt.Errorf("graphql: %s", out.Errors[0].Message)
	}

	return out.Data, nil
}
