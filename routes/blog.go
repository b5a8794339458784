package routes

import (
	"errors"
	"time"

	"heirloom/models"
	"heirloom/storage"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func getAllBlogPosts(c *fiber.Ctx) error {
	posts, err := storage.GetBlogPosts()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch blog posts",
		})
	}
	return c.JSON(posts)
}

func getBlogPost(c *fiber.Ctx) error {
	post, err := storage.GetBlogPostBySlug(c.Params("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Blog post not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch blog post",
		})
	}
	return c.JSON(post)
}

func createBlogPost(c *fiber.Ctx) error {
	post := new(models.BlogPost)
	if err := c.BodyParser(post); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Failed to parse request body",
		})
	}
	if err := validate.Struct(post); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed: " + err.Error(),
		})
	}
	if post.PublishedAt.IsZero() {
		post.PublishedAt = time.Now()
	}
	if err := storage.CreateBlogPost(post); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to create blog post",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

func updateBlogPost(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid blog post id",
		})
	}

	updates := new(models.BlogPost)
	if err := c.BodyParser(updates); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Failed to parse request body",
		})
	}

	post, err := storage.UpdateBlogPost(uint(id), updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Blog post not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to update blog post",
		})
	}
	return c.JSON(post)
}

func deleteBlogPost(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid blog post id",
		})
	}

	if err := storage.DeleteBlogPost(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to delete blog post",
		})
	}
	return c.JSON(fiber.Map{"message": "Blog post deleted"})
}
